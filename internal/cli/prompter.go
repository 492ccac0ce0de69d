package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/engine"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultConfirmToken is the answer that confirms a deletion.
const DefaultConfirmToken = "SI"

// Answers accepted as "yes" by YesNo, compared case-insensitively.
var yesAnswers = map[string]bool{
	"si":  true,
	"sí":  true,
	"s":   true,
	"yes": true,
	"y":   true,
}

// Config holds presentation settings for the prompter.
type Config struct {
	CurrencySymbol string
	ConfirmToken   string
}

// DefaultConfig returns the default prompter configuration.
func DefaultConfig() Config {
	return Config{
		CurrencySymbol: DefaultCurrencySymbol,
		ConfirmToken:   DefaultConfirmToken,
	}
}

// Prompter implements the interactive CLI prompting interface for a ledger session.
type Prompter struct {
	writer       io.Writer
	reader       *NonBlockingReader
	progressBar  *progressbar.ProgressBar
	symbol       string
	confirmToken string
}

// NewCLIPrompter creates a new CLI prompter with the given reader and writer.
func NewCLIPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return NewCLIPrompterWithConfig(reader, writer, DefaultConfig())
}

// NewCLIPrompterWithConfig creates a new CLI prompter with custom configuration.
// Empty settings fall back to their defaults.
func NewCLIPrompterWithConfig(reader io.Reader, writer io.Writer, config Config) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	defaults := DefaultConfig()
	if config.CurrencySymbol == "" {
		config.CurrencySymbol = defaults.CurrencySymbol
	}
	if strings.TrimSpace(config.ConfirmToken) == "" {
		config.ConfirmToken = defaults.ConfirmToken
	}

	return &Prompter{
		reader:       NewNonBlockingReader(reader),
		writer:       writer,
		symbol:       config.CurrencySymbol,
		confirmToken: strings.ToUpper(strings.TrimSpace(config.ConfirmToken)),
	}
}

// MenuChoice asks until the answer is an option in 1..maxChoice.
func (p *Prompter) MenuChoice(ctx context.Context, prompt string, maxChoice int) (int, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		choice, err := ParseMenuChoice(line, maxChoice)
		if err == nil {
			return choice, nil
		}
		p.ShowError(common.UserMessage(err))
	}
}

// PositiveAmount asks until the answer is a strictly positive number.
func (p *Prompter) PositiveAmount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		p.ShowError(common.UserMessage(err))
		p.writeLine(SubtleStyle.Render("Please try again"))
	}
}

// RequiredText asks until the trimmed answer is non-empty.
func (p *Prompter) RequiredText(ctx context.Context, prompt, emptyMessage string) (string, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		p.ShowError(emptyMessage)
	}
}

// OptionalText asks once; a blank answer keeps the current value.
func (p *Prompter) OptionalText(ctx context.Context, prompt string) (*string, error) {
	p.writeLine(SubtleStyle.Render("Leave blank to keep the current value"))

	line, err := p.ask(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	return &line, nil
}

// OptionalAmount asks once; blank, zero or negative keeps the current value,
// and text that is not a number is reported and also keeps it.
func (p *Prompter) OptionalAmount(ctx context.Context, prompt string) (*decimal.Decimal, error) {
	p.writeLine(SubtleStyle.Render("Enter 0 or leave blank to keep the current value"))

	line, err := p.ask(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	amount, err := ParseAmount(line)
	switch {
	case err == nil:
		return &amount, nil
	case errors.Is(err, common.ErrParse):
		p.ShowWarning("Invalid value, keeping the previous one")
	}
	return nil, nil
}

// YesNo asks once and reports whether the answer is an affirmative.
func (p *Prompter) YesNo(ctx context.Context, prompt string) (bool, error) {
	line, err := p.ask(ctx, prompt+" (yes/no)")
	if err != nil {
		return false, err
	}
	return yesAnswers[strings.ToLower(line)], nil
}

// Confirm asks once and reports whether the answer is the confirmation token.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	line, err := p.ask(ctx, fmt.Sprintf("%s (type '%s' to confirm)", prompt, p.confirmToken))
	if err != nil {
		return false, err
	}
	return strings.ToUpper(line) == p.confirmToken, nil
}

// ConfirmIncomeDeletion shows the entry and asks for the confirmation token.
func (p *Prompter) ConfirmIncomeDeletion(ctx context.Context, entry model.IncomeEntry) (bool, error) {
	return p.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete: %s?", DescribeIncome(p.symbol, entry)))
}

// ConfirmExpenseDeletion shows the entry and asks for the confirmation token.
func (p *Prompter) ConfirmExpenseDeletion(ctx context.Context, entry model.ExpenseEntry) (bool, error) {
	return p.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete: %s?", DescribeExpense(p.symbol, entry)))
}

// ShowBanner displays the welcome banner.
func (p *Prompter) ShowBanner() {
	content := "This program records your monthly income and expenses\n" +
		"and shows a financial summary of them."
	p.writeLine(RenderBox(LedgerIcon+" Personal Finance Ledger", content))
}

// ShowFarewell displays the closing message.
func (p *Prompter) ShowFarewell() {
	p.writeLine("")
	p.writeLine(FormatTitle("Thanks for using the personal finance ledger"))
	p.writeLine("Have a great day! " + LedgerIcon)
}

// ShowHeader displays a section title.
func (p *Prompter) ShowHeader(title string) {
	p.writeLine("")
	p.writeLine(TitleStyle.Render(strings.ToUpper(title)))
}

// ShowMenu displays numbered options under title.
func (p *Prompter) ShowMenu(title string, options []string) {
	lines := make([]string, len(options))
	for i, option := range options {
		lines[i] = fmt.Sprintf("%d. %s", i+1, option)
	}
	p.writeLine("")
	p.writeLine(RenderBox(title, strings.Join(lines, "\n")))
}

// ShowCategories displays the category menu.
func (p *Prompter) ShowCategories(categories []model.Category) {
	p.writeLine("")
	p.writeLine(BoldStyle.Render("Available categories:"))
	for i, c := range categories {
		p.writeLine(fmt.Sprintf("%d. %s", i+1, c.Title()))
	}
}

// ShowIncomeList displays income entries numbered by position.
func (p *Prompter) ShowIncomeList(entries []model.IncomeEntry) {
	p.writeLine("")
	p.writeLine(TableHeaderStyle.Render("Income"))
	for i, e := range entries {
		p.writeLine(fmt.Sprintf("%d. %s", i+1, DescribeIncome(p.symbol, e)))
	}
}

// ShowExpenseList displays expense entries numbered by position.
func (p *Prompter) ShowExpenseList(entries []model.ExpenseEntry) {
	p.writeLine("")
	p.writeLine(TableHeaderStyle.Render("Expenses"))
	for i, e := range entries {
		p.writeLine(fmt.Sprintf("%d. %s", i+1, DescribeExpense(p.symbol, e)))
	}
}

// ShowCurrentIncome displays the entry about to be edited.
func (p *Prompter) ShowCurrentIncome(entry model.IncomeEntry) {
	p.writeLine("")
	p.writeLine("Current income: " + DescribeIncome(p.symbol, entry))
}

// ShowCurrentExpense displays the entry about to be edited.
func (p *Prompter) ShowCurrentExpense(entry model.ExpenseEntry) {
	p.writeLine("")
	p.writeLine("Current expense: " + DescribeExpense(p.symbol, entry))
}

// ShowSavedIncome echoes a registered income entry.
func (p *Prompter) ShowSavedIncome(entry model.IncomeEntry) {
	p.ShowSuccess("Income saved: " + DescribeIncome(p.symbol, entry))
}

// ShowSavedExpense echoes a registered expense entry.
func (p *Prompter) ShowSavedExpense(entry model.ExpenseEntry) {
	p.ShowSuccess("Expense saved: " + DescribeExpense(p.symbol, entry))
}

// ShowSummary displays the financial summary.
func (p *Prompter) ShowSummary(summary model.Summary) {
	p.writeLine(RenderSummary(p.symbol, summary))
}

// ShowSuccess displays a success message.
func (p *Prompter) ShowSuccess(message string) {
	p.writeLine(FormatSuccess(message))
}

// ShowInfo displays an informational message.
func (p *Prompter) ShowInfo(message string) {
	p.writeLine(FormatInfo(message))
}

// ShowEmpty displays a notice that there is nothing to show yet.
func (p *Prompter) ShowEmpty(message string) {
	p.writeLine(FormatEmpty(message))
}

// ShowCelebration displays the end of a completed batch.
func (p *Prompter) ShowCelebration(message string) {
	p.writeLine(FormatCelebration(message))
}

// ShowWarning displays a warning.
func (p *Prompter) ShowWarning(message string) {
	p.writeLine(FormatWarning(message))
}

// ShowError displays an error message.
func (p *Prompter) ShowError(message string) {
	p.writeLine(FormatError(message))
}

// StartBatch starts a progress bar for batches of more than one entry.
func (p *Prompter) StartBatch(total int, description string) {
	p.progressBar = nil
	if total <= 1 {
		return
	}

	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// AdvanceBatch records one completed entry of the current batch.
func (p *Prompter) AdvanceBatch() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// FinishBatch completes and discards the current progress bar.
func (p *Prompter) FinishBatch() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	p.progressBar = nil
}

// ask writes prompt and returns the trimmed answer.
func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return p.reader.ReadLine(ctx)
}

func (p *Prompter) writeLine(text string) {
	if _, err := fmt.Fprintln(p.writer, text); err != nil {
		slog.Warn("Failed to write output", "error", err)
	}
}

// Ensure Prompter implements the engine.Prompter interface.
var _ engine.Prompter = (*Prompter)(nil)
