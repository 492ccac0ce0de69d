package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// MockPrompter is a scripted implementation of the Prompter interface.
// Each input method consumes the next answer from its queue; an empty
// queue behaves like exhausted input and returns common.ErrInputClosed.
type MockPrompter struct {
	Choices         []int
	Amounts         []decimal.Decimal
	Texts           []string
	OptionalTexts   []*string
	OptionalAmounts []*decimal.Decimal
	Answers         []bool
	Confirmations   []bool

	Menus     []string
	Headers   []string
	Messages  []MockMessage
	Summaries []model.Summary
	Saved     []string
	Batches   []int
	Advanced  int
	Finished  int

	BannerShown   bool
	FarewellShown bool

	mu sync.Mutex
}

// MockMessage records one message shown to the user.
type MockMessage struct {
	Kind string
	Text string
}

// NewMockPrompter creates a mock prompter with the given menu choices queued.
func NewMockPrompter(choices ...int) *MockPrompter {
	return &MockPrompter{Choices: choices}
}

func next[T any](ctx context.Context, queue *[]T) (T, error) {
	var zero T
	if ctx.Err() != nil {
		return zero, common.ErrInputCancelled
	}
	if len(*queue) == 0 {
		return zero, common.ErrInputClosed
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v, nil
}

// MenuChoice returns the next queued choice, failing if it is outside 1..maxChoice.
func (m *MockPrompter) MenuChoice(ctx context.Context, prompt string, maxChoice int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	choice, err := next(ctx, &m.Choices)
	if err != nil {
		return 0, err
	}
	if choice < 1 || choice > maxChoice {
		return 0, fmt.Errorf("scripted choice %d for %q not in 1..%d", choice, prompt, maxChoice)
	}
	return choice, nil
}

// PositiveAmount returns the next queued amount.
func (m *MockPrompter) PositiveAmount(ctx context.Context, _ string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.Amounts)
}

// RequiredText returns the next queued text.
func (m *MockPrompter) RequiredText(ctx context.Context, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.Texts)
}

// OptionalText returns the next queued optional text.
func (m *MockPrompter) OptionalText(ctx context.Context, _ string) (*string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.OptionalTexts)
}

// OptionalAmount returns the next queued optional amount.
func (m *MockPrompter) OptionalAmount(ctx context.Context, _ string) (*decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.OptionalAmounts)
}

// YesNo returns the next queued answer.
func (m *MockPrompter) YesNo(ctx context.Context, _ string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.Answers)
}

// ConfirmIncomeDeletion returns the next queued confirmation.
func (m *MockPrompter) ConfirmIncomeDeletion(ctx context.Context, _ model.IncomeEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.Confirmations)
}

// ConfirmExpenseDeletion returns the next queued confirmation.
func (m *MockPrompter) ConfirmExpenseDeletion(ctx context.Context, _ model.ExpenseEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return next(ctx, &m.Confirmations)
}

// ShowBanner records that the banner was shown.
func (m *MockPrompter) ShowBanner() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BannerShown = true
}

// ShowFarewell records that the farewell was shown.
func (m *MockPrompter) ShowFarewell() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FarewellShown = true
}

// ShowHeader records the header.
func (m *MockPrompter) ShowHeader(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Headers = append(m.Headers, title)
}

// ShowMenu records the menu title.
func (m *MockPrompter) ShowMenu(title string, _ []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Menus = append(m.Menus, title)
}

// ShowCategories is a no-op.
func (m *MockPrompter) ShowCategories(_ []model.Category) {}

// ShowIncomeList is a no-op.
func (m *MockPrompter) ShowIncomeList(_ []model.IncomeEntry) {}

// ShowExpenseList is a no-op.
func (m *MockPrompter) ShowExpenseList(_ []model.ExpenseEntry) {}

// ShowCurrentIncome is a no-op.
func (m *MockPrompter) ShowCurrentIncome(_ model.IncomeEntry) {}

// ShowCurrentExpense is a no-op.
func (m *MockPrompter) ShowCurrentExpense(_ model.ExpenseEntry) {}

// ShowSavedIncome records the saved description.
func (m *MockPrompter) ShowSavedIncome(entry model.IncomeEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = append(m.Saved, entry.Description)
}

// ShowSavedExpense records the saved name.
func (m *MockPrompter) ShowSavedExpense(entry model.ExpenseEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = append(m.Saved, entry.Name)
}

// ShowSummary records the summary.
func (m *MockPrompter) ShowSummary(summary model.Summary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Summaries = append(m.Summaries, summary)
}

// ShowSuccess records a success message.
func (m *MockPrompter) ShowSuccess(message string) { m.record("success", message) }

// ShowInfo records an informational message.
func (m *MockPrompter) ShowInfo(message string) { m.record("info", message) }

// ShowEmpty records an empty-ledger notice.
func (m *MockPrompter) ShowEmpty(message string) { m.record("empty", message) }

// ShowCelebration records a batch-complete message.
func (m *MockPrompter) ShowCelebration(message string) { m.record("celebration", message) }

// ShowWarning records a warning.
func (m *MockPrompter) ShowWarning(message string) { m.record("warning", message) }

// ShowError records an error message.
func (m *MockPrompter) ShowError(message string) { m.record("error", message) }

// StartBatch records the batch size.
func (m *MockPrompter) StartBatch(total int, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Batches = append(m.Batches, total)
}

// AdvanceBatch counts completed batch entries.
func (m *MockPrompter) AdvanceBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Advanced++
}

// FinishBatch counts finish calls.
func (m *MockPrompter) FinishBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Finished++
}

// MessagesOf returns the texts of recorded messages of the given kind.
func (m *MockPrompter) MessagesOf(kind string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, msg := range m.Messages {
		if msg.Kind == kind {
			out = append(out, msg.Text)
		}
	}
	return out
}

func (m *MockPrompter) record(kind, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, MockMessage{Kind: kind, Text: text})
}

var _ Prompter = (*MockPrompter)(nil)
