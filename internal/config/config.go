package config

import (
	"errors"

	"billboard-locations/internal/transform"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	InputFile  string `mapstructure:"INPUT_FILE"`
	SheetName  string `mapstructure:"SHEET_NAME"`
	OutputFile string `mapstructure:"OUTPUT_FILE"`
	JSVariable string `mapstructure:"JS_VARIABLE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`

	ColumnRegion    string `mapstructure:"COLUMN_REGION"`
	ColumnProvince  string `mapstructure:"COLUMN_PROVINCE"`
	ColumnMedia     string `mapstructure:"COLUMN_MEDIA"`
	ColumnLocation  string `mapstructure:"COLUMN_LOCATION"`
	ColumnLatitude  string `mapstructure:"COLUMN_LATITUDE"`
	ColumnLongitude string `mapstructure:"COLUMN_LONGITUDE"`
	ColumnSize      string `mapstructure:"COLUMN_SIZE"`
	ColumnShowTimes string `mapstructure:"COLUMN_SHOW_TIMES"`
	ColumnTiming    string `mapstructure:"COLUMN_TIMING"`
	ColumnTraffic   string `mapstructure:"COLUMN_TRAFFIC"`
}

// LoadConfig reads app.env from path, if present, and overlays environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	cols := transform.DefaultColumns()

	defaults := map[string]any{
		"DB_SOURCE":         "",
		"SERVER_ADDRESS":    "0.0.0.0:8080",
		"INPUT_FILE":        "data.csv",
		"SHEET_NAME":        "",
		"OUTPUT_FILE":       "locations-data.js",
		"JS_VARIABLE":       "locationsData",
		"LOG_LEVEL":         "info",
		"LOG_PRETTY":        true,
		"COLUMN_REGION":     cols.Region,
		"COLUMN_PROVINCE":   cols.Province,
		"COLUMN_MEDIA":      cols.Media,
		"COLUMN_LOCATION":   cols.Location,
		"COLUMN_LATITUDE":   cols.Latitude,
		"COLUMN_LONGITUDE":  cols.Longitude,
		"COLUMN_SIZE":       cols.Size,
		"COLUMN_SHOW_TIMES": cols.ShowTimes,
		"COLUMN_TIMING":     cols.Timing,
		"COLUMN_TRAFFIC":    cols.Traffic,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// Columns returns the sheet headers configured for the record builder.
func (c Config) Columns() transform.Columns {
	return transform.Columns{
		Region:    c.ColumnRegion,
		Province:  c.ColumnProvince,
		Media:     c.ColumnMedia,
		Location:  c.ColumnLocation,
		Latitude:  c.ColumnLatitude,
		Longitude: c.ColumnLongitude,
		Size:      c.ColumnSize,
		ShowTimes: c.ColumnShowTimes,
		Timing:    c.ColumnTiming,
		Traffic:   c.ColumnTraffic,
	}
}
