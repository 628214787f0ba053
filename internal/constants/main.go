package constants

const (
	IMAGES_PATH   = "/images"
	CHANNELS_PATH = "/channels"
	PING_PATH     = "/ping"

	DefaultHost        = "https://images.joyent.com"
	DefaultConfigName  = ".img-cli"
	EnvPrefix          = "IMG"
	DefaultOutputStyle = "table"
)
