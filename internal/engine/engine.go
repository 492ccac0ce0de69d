// Package engine runs the interactive ledger session: main menu dispatch and
// the registration, summary and edit flows over a service.Storage.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/sebastianlopezramirez/ledger/internal/report"
	"github.com/sebastianlopezramirez/ledger/internal/service"
)

// Main menu options, in display order.
const (
	optionRegisterIncome = iota + 1
	optionRegisterExpenses
	optionSummary
	optionEditRecords
	optionExit
)

// Edit menu options, in display order.
const (
	optionEditIncome = iota + 1
	optionDeleteIncome
	optionEditExpense
	optionDeleteExpense
	optionBack
)

var mainMenu = []string{
	"Register income",
	"Register expenses",
	"View financial summary",
	"Edit or delete records",
	"Exit",
}

var editMenu = []string{
	"Edit income",
	"Delete income",
	"Edit expense",
	"Delete expense",
	"Back to main menu",
}

// Session drives one interactive ledger session.
type Session struct {
	storage  service.Storage
	prompter Prompter
	maxBatch int
}

// Config holds configuration options for a session.
type Config struct {
	// MaxBatch is the largest number of entries registered in one batch.
	MaxBatch int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxBatch: 10,
	}
}

// New creates a new session with the given dependencies.
func New(storage service.Storage, prompter Prompter) *Session {
	return NewWithConfig(storage, prompter, DefaultConfig())
}

// NewWithConfig creates a new session with custom configuration.
func NewWithConfig(storage service.Storage, prompter Prompter, config Config) *Session {
	if config.MaxBatch < 1 {
		config.MaxBatch = DefaultConfig().MaxBatch
	}
	return &Session{
		storage:  storage,
		prompter: prompter,
		maxBatch: config.MaxBatch,
	}
}

// Run shows the main menu until the user exits. End of input and
// cancellation end the session without error.
func (s *Session) Run(ctx context.Context) error {
	slog.Info("Starting ledger session", "max_batch", s.maxBatch)
	s.prompter.ShowBanner()

	err := s.mainLoop(ctx)
	switch {
	case err == nil:
		s.prompter.ShowFarewell()
		return nil
	case errors.Is(err, common.ErrInputClosed):
		slog.Info("Input closed, ending session")
		s.prompter.ShowFarewell()
		return nil
	case errors.Is(err, common.ErrInputCancelled), errors.Is(err, context.Canceled):
		slog.Info("Session canceled")
		return nil
	default:
		return err
	}
}

func (s *Session) mainLoop(ctx context.Context) error {
	for {
		s.prompter.ShowMenu("Personal Finance Ledger", mainMenu)
		choice, err := s.prompter.MenuChoice(ctx, "Enter the number of the option you want", len(mainMenu))
		if err != nil {
			return err
		}

		switch choice {
		case optionRegisterIncome:
			err = s.RegisterIncome(ctx)
		case optionRegisterExpenses:
			err = s.RegisterExpenses(ctx)
		case optionSummary:
			err = s.ShowSummary(ctx)
		case optionEditRecords:
			err = s.editLoop(ctx)
		case optionExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) editLoop(ctx context.Context) error {
	for {
		s.prompter.ShowMenu("Edit or Delete Records", editMenu)
		choice, err := s.prompter.MenuChoice(ctx, "Choose an option", len(editMenu))
		if err != nil {
			return err
		}

		switch choice {
		case optionEditIncome:
			err = s.EditIncome(ctx)
		case optionDeleteIncome:
			err = s.DeleteIncome(ctx)
		case optionEditExpense:
			err = s.EditExpense(ctx)
		case optionDeleteExpense:
			err = s.DeleteExpense(ctx)
		case optionBack:
			return nil
		}
		if err = s.reportRejected(err); err != nil {
			return err
		}
	}
}

// reportRejected reports errors the user can act on and returns every other error.
func (s *Session) reportRejected(err error) error {
	if errors.Is(err, common.ErrOutOfRange) || errors.Is(err, common.ErrInvalidEntry) {
		slog.Warn("Ledger operation rejected", "error", err)
		s.prompter.ShowError(common.UserMessage(err))
		return nil
	}
	return err
}

// RegisterIncome records a batch of income entries.
func (s *Session) RegisterIncome(ctx context.Context) error {
	s.prompter.ShowHeader("Register income")

	count, err := s.prompter.MenuChoice(ctx, "How many income entries do you want to register?", s.maxBatch)
	if err != nil {
		return err
	}

	s.prompter.StartBatch(count, "Registering income")
	defer s.prompter.FinishBatch()

	saved := 0

	for i := 1; i <= count; i++ {
		s.prompter.ShowHeader(fmt.Sprintf("Income #%d", i))

		description, err := s.prompter.RequiredText(ctx,
			"Income description (e.g. salary, sale)", "The description cannot be empty")
		if err != nil {
			return err
		}
		amount, err := s.prompter.PositiveAmount(ctx, "Income amount")
		if err != nil {
			return err
		}

		entry, err := s.storage.AddIncome(ctx, description, amount)
		if err != nil {
			if err = s.reportRejected(err); err != nil {
				return fmt.Errorf("failed to register income: %w", err)
			}
			continue
		}
		saved++
		s.prompter.ShowSavedIncome(entry)
		s.prompter.AdvanceBatch()
	}

	s.prompter.FinishBatch()
	s.prompter.ShowCelebration(fmt.Sprintf("Registered %d income entries successfully!", saved))
	return nil
}

// RegisterExpenses records a batch of expense entries.
func (s *Session) RegisterExpenses(ctx context.Context) error {
	s.prompter.ShowHeader("Register expenses")

	count, err := s.prompter.MenuChoice(ctx, "How many expenses do you want to register?", s.maxBatch)
	if err != nil {
		return err
	}

	s.prompter.StartBatch(count, "Registering expenses")
	defer s.prompter.FinishBatch()

	saved := 0

	for i := 1; i <= count; i++ {
		s.prompter.ShowHeader(fmt.Sprintf("Expense #%d", i))

		name, err := s.prompter.RequiredText(ctx,
			"Expense name (e.g. groceries, fuel)", "The name cannot be empty")
		if err != nil {
			return err
		}
		amount, err := s.prompter.PositiveAmount(ctx, "Expense amount")
		if err != nil {
			return err
		}
		category, err := s.chooseCategory(ctx, "Select the category number")
		if err != nil {
			return err
		}

		entry, err := s.storage.AddExpense(ctx, name, amount, category)
		if err != nil {
			if err = s.reportRejected(err); err != nil {
				return fmt.Errorf("failed to register expense: %w", err)
			}
			continue
		}
		saved++
		s.prompter.ShowSavedExpense(entry)
		s.prompter.AdvanceBatch()
	}

	s.prompter.FinishBatch()
	s.prompter.ShowCelebration(fmt.Sprintf("Registered %d expenses successfully!", saved))
	return nil
}

// ShowSummary displays the aggregate view of the ledger.
func (s *Session) ShowSummary(ctx context.Context) error {
	income, err := s.storage.ListIncome(ctx)
	if err != nil {
		return fmt.Errorf("failed to list income: %w", err)
	}
	expenses, err := s.storage.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	summary := report.Build(income, expenses)
	if summary.Empty() {
		s.prompter.ShowEmpty("No data registered yet.")
		s.prompter.ShowInfo("Register some income and expenses first.")
		return nil
	}

	slog.Debug("Built summary",
		"income_count", summary.IncomeCount,
		"expense_count", summary.ExpenseCount,
		"advice", summary.Advice)
	s.prompter.ShowSummary(summary)
	return nil
}

// EditIncome lets the user change the description or amount of one income entry.
func (s *Session) EditIncome(ctx context.Context) error {
	s.prompter.ShowHeader("Edit income")

	entries, err := s.storage.ListIncome(ctx)
	if err != nil {
		return fmt.Errorf("failed to list income: %w", err)
	}
	if len(entries) == 0 {
		s.prompter.ShowEmpty("No income registered.")
		return nil
	}

	s.prompter.ShowIncomeList(entries)
	position, err := s.prompter.MenuChoice(ctx, "Which income entry do you want to edit? (number)", len(entries))
	if err != nil {
		return err
	}
	s.prompter.ShowCurrentIncome(entries[position-1])

	var patch model.IncomePatch
	if patch.Description, err = s.prompter.OptionalText(ctx, "New description"); err != nil {
		return err
	}
	if patch.Amount, err = s.prompter.OptionalAmount(ctx, "New amount"); err != nil {
		return err
	}

	if _, err := s.storage.EditIncome(ctx, position, patch); err != nil {
		return fmt.Errorf("failed to edit income: %w", err)
	}
	s.prompter.ShowSuccess("Income updated successfully!")
	return nil
}

// DeleteIncome removes one income entry after confirmation.
func (s *Session) DeleteIncome(ctx context.Context) error {
	s.prompter.ShowHeader("Delete income")

	entries, err := s.storage.ListIncome(ctx)
	if err != nil {
		return fmt.Errorf("failed to list income: %w", err)
	}
	if len(entries) == 0 {
		s.prompter.ShowEmpty("No income registered.")
		return nil
	}

	s.prompter.ShowIncomeList(entries)
	position, err := s.prompter.MenuChoice(ctx, "Which income entry do you want to delete? (number)", len(entries))
	if err != nil {
		return err
	}

	confirmed, err := s.prompter.ConfirmIncomeDeletion(ctx, entries[position-1])
	if err != nil {
		return err
	}
	if !confirmed {
		s.prompter.ShowError("Deletion cancelled")
		return nil
	}

	if _, err := s.storage.DeleteIncome(ctx, position); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	s.prompter.ShowSuccess("Income deleted successfully!")
	return nil
}

// EditExpense lets the user change the name, amount or category of one expense.
func (s *Session) EditExpense(ctx context.Context) error {
	s.prompter.ShowHeader("Edit expense")

	entries, err := s.storage.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}
	if len(entries) == 0 {
		s.prompter.ShowEmpty("No expenses registered.")
		return nil
	}

	s.prompter.ShowExpenseList(entries)
	position, err := s.prompter.MenuChoice(ctx, "Which expense do you want to edit? (number)", len(entries))
	if err != nil {
		return err
	}
	s.prompter.ShowCurrentExpense(entries[position-1])

	var patch model.ExpensePatch
	if patch.Name, err = s.prompter.OptionalText(ctx, "New name"); err != nil {
		return err
	}
	if patch.Amount, err = s.prompter.OptionalAmount(ctx, "New amount"); err != nil {
		return err
	}

	change, err := s.prompter.YesNo(ctx, "Do you want to change the category?")
	if err != nil {
		return err
	}
	if change {
		category, err := s.chooseCategory(ctx, "Select the new category")
		if err != nil {
			return err
		}
		patch.Category = &category
	}

	if _, err := s.storage.EditExpense(ctx, position, patch); err != nil {
		return fmt.Errorf("failed to edit expense: %w", err)
	}
	s.prompter.ShowSuccess("Expense updated successfully!")
	return nil
}

// DeleteExpense removes one expense after confirmation.
func (s *Session) DeleteExpense(ctx context.Context) error {
	s.prompter.ShowHeader("Delete expense")

	entries, err := s.storage.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}
	if len(entries) == 0 {
		s.prompter.ShowEmpty("No expenses registered.")
		return nil
	}

	s.prompter.ShowExpenseList(entries)
	position, err := s.prompter.MenuChoice(ctx, "Which expense do you want to delete? (number)", len(entries))
	if err != nil {
		return err
	}

	confirmed, err := s.prompter.ConfirmExpenseDeletion(ctx, entries[position-1])
	if err != nil {
		return err
	}
	if !confirmed {
		s.prompter.ShowError("Deletion cancelled")
		return nil
	}

	if _, err := s.storage.DeleteExpense(ctx, position); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.prompter.ShowSuccess("Expense deleted successfully!")
	return nil
}

func (s *Session) chooseCategory(ctx context.Context, prompt string) (model.Category, error) {
	categories := model.Categories()
	s.prompter.ShowCategories(categories)

	choice, err := s.prompter.MenuChoice(ctx, prompt, len(categories))
	if err != nil {
		return 0, err
	}
	return categories[choice-1], nil
}
