package api

import (
	"sync"
	"time"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/spf13/viper"
)

type Config struct {
	ServerConfig
	AuthConfig
	StorageConfig
	RosterConfig
}

type ServerConfig struct {
	Port            int
	MaxUploadSizeMB int64
}

type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	AdminTokenTTL     time.Duration
	UserTokenTTL      time.Duration
}

type StorageConfig struct {
	DatabaseURL  string
	BucketName   string
	BucketRegion string
}

type RosterConfig struct {
	RosterURL string
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		ServerConfig: ServerConfig{
			Port:            viper.GetInt("server.port"),
			MaxUploadSizeMB: getInt64OrDefault("server.maxUploadSizeMB", 5),
		},
		AuthConfig: AuthConfig{
			AdminUsername:     getString("auth.adminUsername"),
			AdminPasswordHash: getString("auth.adminPasswordHash"),
			JWTSecret:         getString("auth.jwtSecret"),
			AdminTokenTTL:     time.Duration(getInt64OrDefault("auth.adminTokenTTLMinutes", 20)) * time.Minute,
			UserTokenTTL:      time.Duration(getInt64OrDefault("auth.userTokenTTLMinutes", 60)) * time.Minute,
		},
		StorageConfig: StorageConfig{
			DatabaseURL:  getString("storage.databaseURL"),
			BucketName:   getString("storage.bucketName"),
			BucketRegion: getString("storage.bucketRegion"),
		},
		RosterConfig: RosterConfig{
			RosterURL: getString("roster.url"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getInt64OrDefault(name string, def int64) int64 {
	if viper.IsSet(name) {
		v := viper.GetInt64(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
