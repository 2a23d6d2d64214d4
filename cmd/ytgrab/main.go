package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/internal/logging"
	"go.uber.org/zap"
)

const (
	modeEnvProduction = "prod"
	modeEnvDebug      = "debug"
)

func main() {
	var logCfg zap.Config

	viper.AddConfigPath("/etc/ytgrab")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("YTGRAB")
	viper.SetConfigName("config")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("failed to read config (used file: %q): %w", viper.ConfigFileUsed(), err))
		}
	}

	modeEnv := viper.GetString("MODE")
	logFilePath := viper.GetString("LOG_FILE_PATH")

	switch modeEnv {
	case modeEnvProduction:
		logCfg = zap.NewProductionConfig()

	case modeEnvDebug, "":
		modeEnv = modeEnvDebug
		logCfg = zap.NewDevelopmentConfig()
	default:
		fmt.Printf("ERROR! Unknown mode specified in MODE env var: '%s'. You can use only 'prod', 'debug' or leave this variable empty. Empty MODE will be treated as 'debug'!\n", modeEnv)
		os.Exit(1)
	}

	// The interactive session owns the terminal, so logs never go to
	// stdout/stderr. Without LOG_FILE_PATH logging is disabled entirely.
	if logFilePath != "" {
		logCfg.OutputPaths = []string{logFilePath}
		logCfg.ErrorOutputPaths = []string{logFilePath}
	} else {
		logCfg.OutputPaths = nil
		logCfg.ErrorOutputPaths = nil
	}
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	logging.SetLogger(logger)
	log := logger.Sugar()

	log.Infof("[YTGRAB] Application is running. Environment mode=%q", modeEnv)
	defer log.Sync()

	log.Infof("Used config file path: %v", viper.ConfigFileUsed())

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("Run failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
