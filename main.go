// @title Exhibition Page API
// @version 1.0
// @description Backend API for the exhibition catalog and student voting

// @securityDefinitions.apikey AdminSession
// @in cookie
// @name admin_token

// @securityDefinitions.apikey UserSession
// @in cookie
// @name user_token
package main

import (
	_ "github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/docs"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
