package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func SetupLogger(env string, logFilePath string) *zap.Logger {
	var config zap.Config
	var encoderCfg zapcore.EncoderConfig

	if env == "prod" {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}

	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch env {
	case "prod":
		outputPaths := []string{"stderr"}
		if logFilePath != "" {
			outputPaths = append(outputPaths, logFilePath)
		}

		config = zap.Config{
			Level:             zap.NewAtomicLevelAt(zap.InfoLevel),
			Development:       false,
			DisableCaller:     false,
			DisableStacktrace: false,
			Encoding:          "json",
			EncoderConfig:     encoderCfg,
			OutputPaths:       outputPaths,
			ErrorOutputPaths:  []string{"stderr"},
			InitialFields:     map[string]interface{}{"pid": os.Getpid()},
		}
	default:
		outputPaths := []string{"stdout"}
		if logFilePath != "" {
			outputPaths = append(outputPaths, logFilePath)
		}

		config = zap.Config{
			Level:             zap.NewAtomicLevelAt(zap.DebugLevel),
			Development:       true,
			DisableCaller:     false,
			DisableStacktrace: false,
			Encoding:          "console",
			EncoderConfig:     encoderCfg,
			OutputPaths:       outputPaths,
			ErrorOutputPaths:  []string{"stderr"},
			InitialFields:     map[string]interface{}{"pid": os.Getpid()},
		}
	}

	return zap.Must(config.Build())
}
