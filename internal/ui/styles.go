package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the TUI.

var (
	// General Panes
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")) // Purple-ish

	// Headers and Footers
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	// Toast styles, keyed by alert kind
	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")). // Green
				Bold(true)
	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	toastWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // Orange
	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray

	// Modal confirmation overlay
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	// List Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("170")) // Magenta
	helpStyle = lipgloss.NewStyle().PaddingLeft(4).PaddingBottom(1)

	// Detail views
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")). // Light purple
				MarginBottom(1)

	detailTextStyle = lipgloss.NewStyle().
			MarginLeft(2)

	// Form fields
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan
	errTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// Dashboard stat cards
	statCardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2).
			MarginRight(1)
	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
)
