package config

// EnvPrefix is applied by envconfig on top of the explicit tags below.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "CHUCKSBAKES_DB_DSN"
	EnvDBHost = "CHUCKSBAKES_DB_HOST"
	EnvDBUser = "CHUCKSBAKES_DB_USER"
	EnvDBName = "CHUCKSBAKES_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
