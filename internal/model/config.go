package model

type Config struct {
	Style       string `yaml:"style"`
	RecordsFile string `yaml:"records_file"`
	Editor      string `yaml:"editor"`
	Concurrency int    `yaml:"concurrency"`
	LogLevel    string `yaml:"log_level"`
	Output      struct {
		Format string `yaml:"format"`
		Path   string `yaml:"path"`
		Title  string `yaml:"title"`
	} `yaml:"output"`
}

func DefaultConfig() Config {
	config := Config{
		Style:       "gost",
		RecordsFile: "~/.config/bibfmt/records.yaml",
		Editor:      "vim",
		Concurrency: 4,
		LogLevel:    "info",
	}
	config.Output.Format = "docx"
	config.Output.Path = "references.docx"
	config.Output.Title = "Список использованной литературы"
	return config
}
