package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"unitroot/timeSeries/adfuller"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "yaml config path")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	regr := adfuller.GetMyRegressionSpec(cfg.Regression)
	if regr == adfuller.REGR_ERROR {
		log.Fatalf("unknown regression %q", cfg.Regression)
	}
	alpha := adfuller.GetMyAlphaLevel(cfg.Alpha)
	if alpha == adfuller.ALPHA_ERROR {
		log.Fatalf("unknown alpha %q", cfg.Alpha)
	}

	y, err := ReadSeries(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}

	report, err := adfuller.AdfTest(y, cfg.Lag, regr)
	if err != nil {
		log.Fatalf("adf test: %v", err)
	}

	stationary, cv, err := adfuller.Evaluate(report, regr, alpha)
	if err != nil {
		log.Fatalf("critical value: %v", err)
	}

	log.WithFields(logrus.Fields{
		"regression": regr.String(),
		"lag":        cfg.Lag,
		"size":       report.Size,
		"t_stat":     report.TestStatistic,
		"critical":   cv,
		"alpha":      alpha.String(),
	}).Info("augmented dickey-fuller")

	if stationary {
		log.Info("拒绝单位根假设: 序列平稳")
	} else {
		log.Info("无法拒绝单位根假设: 序列非平稳")
	}
}
