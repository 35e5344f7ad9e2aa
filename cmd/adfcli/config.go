package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Input      string `yaml:"input"`      // 序列文件: JSON 数组或含 series 字段的对象
	Lag        int    `yaml:"lag"`        // 滞后阶数
	Regression string `yaml:"regression"` // "n" | "c" | "ct"
	Alpha      string `yaml:"alpha"`      // "1%" | "2.5%" | "5%" | "10%"
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if c.Input == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if c.Lag < 0 {
		return nil, fmt.Errorf("invalid lag: %d", c.Lag)
	}
	if c.Regression == "" {
		c.Regression = "c"
	}
	if c.Alpha == "" {
		c.Alpha = "5%"
	}
	return &c, nil
}

// ReadSeries 读取序列文件, 顶层 JSON 数组或 {"series": [...]}
func ReadSeries(path string) ([]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}

	doc := string(b)
	arr := gjson.Get(doc, "series")
	if !arr.Exists() {
		arr = gjson.Parse(doc)
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("series file %s: expected a JSON array", path)
	}

	vals := arr.Array()
	y := make([]float64, 0, len(vals))
	for _, v := range vals {
		y = append(y, v.Float())
	}
	return y, nil
}
