// Package log 日志初始化:控制台 + 可选的滚动文件输出
package log

import (
	"os"

	log15 "github.com/inconshreveable/log15"
	"github.com/mrtoaf/rugpaperscissors/types"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

//SetLogLevel 只设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(consoleHandler(logLevel))
}

//SetFileLog 根据配置设置文件日志和控制台日志
func SetFileLog(cfg *types.LogConfig) {
	if cfg == nil {
		cfg = &types.LogConfig{LogFile: "logs/rps.log"}
	}
	fillDefaultValue(cfg)
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(
		consoleHandler(cfg.LogConsoleLevel),
		fileHandler(cfg),
	))
}

// 默认error级别,防止打印太多日志
func fillDefaultValue(cfg *types.LogConfig) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func consoleHandler(logLevel string) log15.Handler {
	return log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(os.Stdout, log15.TerminalFormat()),
	)
}

func fileHandler(cfg *types.LogConfig) log15.Handler {
	rotateLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	return log15.LvlFilterHandler(
		getLevel(cfg.Loglevel),
		log15.StreamHandler(rotateLogger, log15.LogfmtFormat()),
	)
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		// 日志级别配置错误时默认error级别
		return log15.LvlError
	}
	return lvl
}
