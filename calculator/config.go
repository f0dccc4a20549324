package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"entropy/model"
)

var cfg Config

type Config struct {
	Addr       string
	Resolution int

	// 输入表单的默认值
	Defaults model.ProcessInput
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("配置文件读取错误, 使用内置默认值: ", err)
		file = ini.Empty()
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	cfg = Config{
		Addr:       file.Section("server").Key("Addr").MustString(":9000"),
		Resolution: file.Section("curve").Key("Resolution").MustInt(100),
		Defaults: model.ProcessInput{
			ProcessType: model.Isothermal,
			N:           file.Section("defaults").Key("N").MustFloat64(1.0),
			TInitial:    file.Section("defaults").Key("TInitial").MustFloat64(300.0),
			TFinal:      file.Section("defaults").Key("TFinal").MustFloat64(400.0),
			VInitial:    file.Section("defaults").Key("VInitial").MustFloat64(0.01),
			VFinal:      file.Section("defaults").Key("VFinal").MustFloat64(0.02),
			Cv:          file.Section("defaults").Key("Cv").MustFloat64(20.8),
			Cp:          file.Section("defaults").Key("Cp").MustFloat64(29.1),
		},
	}
}

// Addr returns the configured listen address.
func Addr() string {
	return cfg.Addr
}

// Defaults returns the configured input form defaults.
func Defaults() model.ProcessInput {
	return cfg.Defaults
}
