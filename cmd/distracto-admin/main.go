package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"distracto-server/client"
	"distracto-server/entities"
	"distracto-server/extension"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gorm.io/datatypes"
)

const defaultServer = "http://localhost:5000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepSeeding
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	email        string
	password     string
	currentInput string
	progress     []string
	message      string
	quitting     bool
}

type seedLogMsg string
type seedDoneMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:         stepEnteringServer,
		currentInput: defaultServer,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type seedAccount struct {
	email       string
	displayName string
}

var demoAccounts = []seedAccount{
	{email: "demo@distracto.com", displayName: "Demo User"},
	{email: "alice@distracto.com", displayName: "Alice Chen"},
	{email: "bob@distracto.com", displayName: "Bob Martinez"},
}

var demoBlockedSites = []string{"facebook.com", "twitter.com", "tiktok.com"}

// seed registers the admin plus the demo accounts, then fills the admin
// account with a week of screen time, blocked sites and a generated
// timetable.
func seed(serverURL, email, password string, progress chan<- tea.Msg) {
	defer close(progress)

	api := client.New(serverURL)

	if _, err := api.Health(); err != nil {
		progress <- errMsg{fmt.Errorf("server unreachable: %w", err)}
		return
	}

	auth, err := api.Login(email, password)
	if err != nil {
		auth, err = api.Register(email, password, "Distracto Admin")
		if err != nil {
			progress <- errMsg{fmt.Errorf("admin login/register failed: %w", err)}
			return
		}
		progress <- seedLogMsg("registered admin " + email)
	} else {
		progress <- seedLogMsg("logged in as " + email)
	}

	for _, account := range demoAccounts {
		peer := client.New(serverURL)
		if _, err := peer.Register(account.email, "demo-password-123", account.displayName); err != nil {
			progress <- seedLogMsg("skipped " + account.email + " (already exists?)")
			continue
		}
		progress <- seedLogMsg("created user " + account.email)

		if found, err := api.SearchUsers(account.displayName); err == nil && len(found) > 0 {
			if err := api.Follow(found[0].ID); err == nil {
				progress <- seedLogMsg("admin now follows " + account.displayName)
			}
		}
	}

	now := time.Now().UTC()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		report := extension.Synthesize(day)
		record := report.ToScreenTime(auth.User.ID, day)
		if _, err := api.UpdateScreenTime(day, record); err != nil {
			progress <- errMsg{fmt.Errorf("screen time seed failed: %w", err)}
			return
		}
	}
	progress <- seedLogMsg("seeded 7 days of screen time")

	for _, url := range demoBlockedSites {
		site := &entities.BlockedSite{URL: url, BlockType: entities.BlockTypeAlways}
		if _, err := api.BlockSite(site); err != nil {
			progress <- errMsg{fmt.Errorf("blocked site seed failed: %w", err)}
			return
		}
	}
	progress <- seedLogMsg(fmt.Sprintf("blocked %d sites", len(demoBlockedSites)))

	timetable := &entities.Timetable{
		Title: "Seeded focus day",
		Tasks: datatypes.JSONSlice[entities.Task]{
			{Time: "09:00 - 11:00", Description: "Deep work block"},
			{Time: "11:00 - 12:00", Description: "Email and admin"},
			{Time: "13:00 - 15:00", Description: "Project work"},
		},
	}
	if _, err := api.CreateTimetable(timetable); err != nil {
		progress <- errMsg{fmt.Errorf("timetable seed failed: %w", err)}
		return
	}
	progress <- seedLogMsg("created sample timetable")

	if _, err := api.GenerateTimetable("Plan a productive work day"); err == nil {
		progress <- seedLogMsg("generated AI timetable")
	}

	progress <- seedDoneMsg{}
}

func startSeed(serverURL, email, password string) (tea.Cmd, chan tea.Msg) {
	progress := make(chan tea.Msg, 16)
	go seed(serverURL, email, password, progress)
	return waitForSeedMsg(progress), progress
}

func waitForSeedMsg(progress chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-progress
		if !ok {
			return nil
		}
		return msg
	}
}

var progressChan chan tea.Msg

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			switch m.step {
			case stepEnteringServer:
				if m.currentInput != "" {
					m.serverURL = strings.TrimRight(m.currentInput, "/")
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepSeeding
					m.message = "Seeding..."
					var cmd tea.Cmd
					cmd, progressChan = startSeed(m.serverURL, m.email, m.password)
					return m, cmd
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}

		default:
			if m.step == stepEnteringServer || m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}
		}

	case seedLogMsg:
		m.progress = append(m.progress, string(msg))
		return m, waitForSeedMsg(progressChan)

	case seedDoneMsg:
		m.step = stepComplete
		m.message = successStyle.Render("✓ Seeding complete")

	case errMsg:
		m.step = stepComplete
		m.message = errorStyle.Render("✗ " + msg.err.Error())
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🌱 Distracto Seed Tool\n\n"))

	switch m.step {
	case stepEnteringServer:
		s.WriteString(promptStyle.Render("Server URL:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Admin email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Admin password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSeeding, stepComplete:
		for _, line := range m.progress {
			s.WriteString(logStyle.Render("• "+line) + "\n")
		}
		if m.message != "" {
			s.WriteString("\n" + m.message + "\n")
		}
		if m.step == stepComplete {
			s.WriteString("\nPress Enter to exit\n")
		}
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
