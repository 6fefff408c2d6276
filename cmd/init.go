package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jackchuka/devsweep/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up devsweep config interactively",
	// The wizard writes a fresh config; an unreadable one must not block it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

type initStep int

const (
	stepWelcome   initStep = iota
	stepOverwrite          // only if config exists
	stepRoot
	stepDays
	stepConfirm
	stepDone
)

var (
	styleInitTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("73"))
	styleInitSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	styleInitWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	styleInitDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type initModel struct {
	step         initStep
	input        textinput.Model
	root         string
	rootWarning  string
	days         int
	dayErr       string
	configPath   string
	configExists bool
	err          error
	cancelled    bool
}

func runInit(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("init needs a terminal; edit %s by hand instead", initConfigPath())
	}

	configPath := initConfigPath()
	_, err := os.Stat(configPath)
	configExists := err == nil

	m := newInitModel(configPath, configExists)

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := result.(*initModel); ok && final.err != nil {
		return final.err
	}

	return nil
}

func initConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

func newInitModel(configPath string, configExists bool) *initModel {
	ti := textinput.New()
	ti.Placeholder = "~/" + config.DefaultWorkspace
	ti.CharLimit = 256
	ti.Width = 50

	return &initModel{
		step:         stepWelcome,
		input:        ti,
		days:         int(config.DefaultStaleAfter / (24 * time.Hour)),
		configPath:   configPath,
		configExists: configExists,
	}
}

func (m *initModel) Init() tea.Cmd {
	return nil
}

func (m *initModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		// Global quit
		if key == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.step {
		case stepWelcome:
			if key == "enter" {
				if m.configExists {
					m.step = stepOverwrite
				} else {
					return m, m.startRoot()
				}
			}
			if key == "q" || key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}

		case stepOverwrite:
			if key == "y" || key == "Y" {
				return m, m.startRoot()
			}
			m.cancelled = true
			return m, tea.Quit

		case stepRoot:
			if key == "enter" {
				val := strings.TrimSpace(m.input.Value())
				if val == "" {
					val = m.input.Placeholder
				}
				m.root = val
				if expanded, exists := expandAndCheck(val); !exists {
					m.rootWarning = fmt.Sprintf("  %s does not exist yet", expanded)
				} else {
					m.rootWarning = ""
				}
				m.step = stepDays
				m.input.Reset()
				m.input.Placeholder = strconv.Itoa(m.days)
				return m, nil
			}
			if key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case stepDays:
			if key == "enter" {
				val := strings.TrimSpace(m.input.Value())
				if val != "" {
					n, err := strconv.Atoi(val)
					if err != nil || n <= 0 {
						m.dayErr = "  Enter a whole number of days"
						m.input.Reset()
						return m, nil
					}
					m.days = n
				}
				m.dayErr = ""
				m.step = stepConfirm
				return m, nil
			}
			if key == "esc" {
				m.step = stepRoot
				m.input.Reset()
				m.input.Placeholder = "~/" + config.DefaultWorkspace
				m.input.SetValue(m.root)
				return m, textinput.Blink
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case stepConfirm:
			if key == "enter" {
				cfg := m.config()
				if err := config.Save(cfg, m.configPath); err != nil {
					m.err = err
				}
				m.step = stepDone
				return m, tea.Quit
			}
			if key == "esc" {
				m.step = stepDays
				m.input.Focus()
				return m, textinput.Blink
			}

		case stepDone:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *initModel) startRoot() tea.Cmd {
	m.step = stepRoot
	m.input.Focus()
	return textinput.Blink
}

func (m *initModel) config() *config.Config {
	cfg := config.NewConfig()
	cfg.Root = m.root
	cfg.StaleAfter = time.Duration(m.days) * 24 * time.Hour
	return cfg
}

func (m *initModel) View() string {
	var b strings.Builder

	switch m.step {
	case stepWelcome:
		b.WriteString(styleInitTitle.Render("Welcome to devsweep!"))
		b.WriteString("\n\n")
		b.WriteString("Config will be saved to ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString(styleInitDim.Render("Press Enter to continue, Esc to cancel"))
		b.WriteString("\n")

	case stepOverwrite:
		b.WriteString(styleInitWarn.Render("Config already exists"))
		b.WriteString(" at ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString("Overwrite? ")
		b.WriteString(styleInitDim.Render("[y/N]"))
		b.WriteString("\n")

	case stepRoot:
		b.WriteString(styleInitTitle.Render("Workspace"))
		b.WriteString("\n\n")
		b.WriteString("Directory whose projects should be swept:\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case stepDays:
		b.WriteString(styleInitTitle.Render("Staleness"))
		b.WriteString("\n\n")
		b.WriteString(styleInitSuccess.Render("  + " + m.root))
		b.WriteString("\n")
		if m.rootWarning != "" {
			b.WriteString(styleInitWarn.Render(m.rootWarning))
			b.WriteString("\n")
		}
		b.WriteString("\nSkip projects modified within how many days?\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.dayErr != "" {
			b.WriteString(styleInitWarn.Render(m.dayErr))
			b.WriteString("\n")
		}

	case stepConfirm:
		b.WriteString(styleInitTitle.Render("Ready to write config"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "  root:        %s\n", m.root)
		fmt.Fprintf(&b, "  stale after: %d days\n", m.days)
		b.WriteString("  dry run:     true\n\n")
		b.WriteString(styleInitDim.Render("[Enter] Write config  [Esc] Go back"))
		b.WriteString("\n")

	case stepDone:
		if m.err != nil {
			b.WriteString(styleInitWarn.Render("Error: " + m.err.Error()))
			b.WriteString("\n")
		} else {
			b.WriteString(styleInitSuccess.Render("Config saved to " + m.configPath))
			b.WriteString("\n\n")
			b.WriteString("Run ")
			b.WriteString(styleInitTitle.Render("devsweep"))
			b.WriteString(" to see what can be reclaimed!\n")
		}
	}

	return b.String()
}

func expandAndCheck(path string) (expanded string, exists bool) {
	expanded = config.ExpandHome(path)
	_, err := os.Stat(expanded)
	return expanded, err == nil
}
