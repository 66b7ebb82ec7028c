/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nakachan-ing/bibfmt/internal/citation"
	"github.com/nakachan-ing/bibfmt/internal/model"
	"github.com/nakachan-ing/bibfmt/internal/render"
	"github.com/nakachan-ing/bibfmt/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

const saveAndExit = "Save & Exit"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type Model struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
	err       error
	save      func(model.Config) error
}

func newModel(config model.Config) *Model {
	return &Model{
		cursor:    0,
		fields:    generateFieldList(),
		config:    config,
		textInput: textinput.New(),
		editMode:  false,
		save:      store.SaveConfig,
	}
}

func generateFieldList() []string {
	return []string{
		"Style", "RecordsFile", "Editor", "Concurrency", "LogLevel",
		"Output.Format", "Output.Path", "Output.Title",
		saveAndExit,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) forceRedraw() tea.Msg {
	return tea.WindowSizeMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.err = m.updateConfig()
				m.editMode = false
				m.textInput.Blur()
				return m, tea.Batch(tea.ClearScreen, m.forceRedraw)
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.fields[m.cursor] == saveAndExit {
				if err := m.save(m.config); err != nil {
					log.Printf("⚠️ Failed to save config file: %v", err)
				}
				return m, tea.Quit
			}
			m.err = nil
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("📄 Configure bibfmt\n\n")

	for i, field := range m.fields {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}
		if field == saveAndExit {
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, field))
			continue
		}
		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, m.getFieldValue(field)))
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render("❌ "+m.err.Error()) + "\n")
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\n↑/↓ to move, Enter to edit, q to quit\n")
	}

	return s.String()
}

func (m Model) getFieldValue(field string) string {
	switch field {
	case "Style":
		return m.config.Style
	case "RecordsFile":
		return m.config.RecordsFile
	case "Editor":
		return m.config.Editor
	case "Concurrency":
		return strconv.Itoa(m.config.Concurrency)
	case "LogLevel":
		return m.config.LogLevel
	case "Output.Format":
		return m.config.Output.Format
	case "Output.Path":
		return m.config.Output.Path
	case "Output.Title":
		return m.config.Output.Title
	default:
		return "UNKNOWN"
	}
}

// updateConfig applies the edited value to the selected field. Invalid
// values leave the config unchanged.
func (m *Model) updateConfig() error {
	newValue := strings.TrimSpace(m.textInput.Value())

	switch m.fields[m.cursor] {
	case "Style":
		style, err := citation.ParseStyle(newValue)
		if err != nil {
			return err
		}
		m.config.Style = string(style)
	case "RecordsFile":
		m.config.RecordsFile = newValue
	case "Editor":
		m.config.Editor = newValue
	case "Concurrency":
		n, err := strconv.Atoi(newValue)
		if err != nil || n < 1 {
			return fmt.Errorf("concurrency must be a positive number: %q", newValue)
		}
		m.config.Concurrency = n
	case "LogLevel":
		if _, err := zapcore.ParseLevel(newValue); err != nil {
			return err
		}
		m.config.LogLevel = newValue
	case "Output.Format":
		if _, err := render.ForFormat(newValue); err != nil {
			return err
		}
		m.config.Output.Format = strings.ToLower(newValue)
	case "Output.Path":
		m.config.Output.Path = newValue
	case "Output.Title":
		m.config.Output.Title = newValue
	}
	return nil
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Printf("failed to get config path: %v", err)
		}

		fmt.Println(configPath)

		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Failed to read config file: %v", err)
		}

		if _, err := tea.NewProgram(newModel(*config)).Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
