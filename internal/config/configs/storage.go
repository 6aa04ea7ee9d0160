package configs

// Storage configures the local media store backing generated imagery.
type Storage struct {
	// Dir is the directory uploaded objects are written to.
	Dir string `env:"DIR" envDefault:"./media"`
	// BaseURL is the public prefix under which Dir is served.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080/media"`
}
