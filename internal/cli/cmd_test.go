package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/alexanderramin/triage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	engine := testutil.NewTestEngine(t)

	return &App{
		Triage: service.NewTriageService(engine,
			repository.NewSQLiteConversationRepo(database),
			repository.NewSQLiteAnswerRepo(database),
			testutil.NewTestUoW(database)),
		Assess:          service.NewAssessmentService(engine),
		Catalog:         engine.Catalog(),
		ConversationTTL: 24 * time.Hour,
	}
}

// executeCmd runs the command tree with args and captures its output.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func startConversation(t *testing.T, app *App, category string) string {
	t.Helper()
	step, err := app.Triage.Start(context.Background(), contract.NewStartRequest(category))
	require.NoError(t, err)
	return step.ConversationID
}

func TestStartCmd_Plain(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "start", "--category", "fever_infections", "--plain")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "conversation "))
	assert.Contains(t, out, "How long have you had a fever?\n1. Less than 3 days\n")
	assert.Contains(t, out, "Reply with a number (1-")
}

func TestStartCmd_RejectsUnknownCategoryFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "start", "--category", "dermatology")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of fever_infections")
}

func TestAnswerCmd_AdvancesConversation(t *testing.T) {
	app := testApp(t)
	id := startConversation(t, app, "fever_infections")

	out, err := executeCmd(t, app, "", "answer", id, "2", "--plain")

	require.NoError(t, err)
	assert.Contains(t, out, "How would you describe your fever?")
}

func TestAnswerCmd_InvalidChoiceRepeatsQuestion(t *testing.T) {
	app := testApp(t)
	id := startConversation(t, app, "fever_infections")

	out, err := executeCmd(t, app, "", "answer", id, "42", "--plain")

	require.Error(t, err)
	assert.Equal(t, contract.ErrInvalidChoice, contract.CodeOf(err))
	assert.Contains(t, out, "How long have you had a fever?")

	step, err := app.Triage.Next(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, step.AnsweredCount)
}

func TestAnswerCmd_UnknownConversation(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "answer", "missing", "1")

	assert.Equal(t, contract.ErrConversationNotFound, contract.CodeOf(err))
}

func TestChatCmd_LineModeRunsToCompletion(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "1\nabc\n1\n1\n1\n", "chat", "--category", "fever_infections")

	require.NoError(t, err)
	assert.Contains(t, out, "invalid choice \"abc\"")
	assert.Contains(t, out, "Triage assessment")
	assert.Contains(t, out, "Urgency level: EMERGENCY")
	assert.Contains(t, out, "Malaria")

	completed := domain.ConversationCompleted
	convs, err := app.Triage.List(context.Background(), &completed, 0)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, 4, convs[0].State.AnsweredCount())
}

func TestChatCmd_LineModeStopsAtEndOfInput(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "1\n", "chat", "--category", "fever_infections")

	require.NoError(t, err)
	assert.Contains(t, out, "resume with: triage next")

	active := domain.ConversationActive
	convs, err := app.Triage.List(context.Background(), &active, 0)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, domain.QuestionKey("fever_pattern"), convs[0].PendingQuestion)
}

func TestResultCmd_PlainMatchesSummaryFormat(t *testing.T) {
	app := testApp(t)
	id := startConversation(t, app, "")

	out, err := executeCmd(t, app, "", "result", id, "--plain")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Triage assessment\n"))
	assert.Contains(t, out, "Urgency level: ROUTINE")
	assert.Contains(t, out, "1. General Medical Evaluation")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestListAndHistoryCmds(t *testing.T) {
	app := testApp(t)
	id := startConversation(t, app, "cardiac")
	_, err := app.Triage.Answer(context.Background(), contract.NewAnswerRequest(id, "1"))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "", "list", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, id+"\tactive\tcardiac\t1")

	out, err = executeCmd(t, app, "", "list", "--status", "completed", "--plain")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = executeCmd(t, app, "", "history", id, "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1. chest_pain: "))

	_, err = executeCmd(t, app, "", "list", "--status", "paused")
	assert.Error(t, err)
}

func TestListCmd_Limit(t *testing.T) {
	app := testApp(t)
	for i := 0; i < 3; i++ {
		startConversation(t, app, "")
	}

	out, err := executeCmd(t, app, "", "list", "--plain")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, err = executeCmd(t, app, "", "list", "--limit", "2", "--plain")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	_, err = executeCmd(t, app, "", "list", "--limit=-1")
	assert.ErrorContains(t, err, "--limit must not be negative")
}

func TestDeleteCmd_Confirmation(t *testing.T) {
	app := testApp(t)
	id := startConversation(t, app, "")

	out, err := executeCmd(t, app, "n\n", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	_, err = app.Triage.Get(context.Background(), id)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "", "delete", id, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted conversation "+id)
	_, err = app.Triage.Get(context.Background(), id)
	assert.Equal(t, contract.ErrConversationNotFound, contract.CodeOf(err))
}

func TestResetCmd(t *testing.T) {
	app := testApp(t)
	id := startConversation(t, app, "digestive")
	_, err := app.Triage.Answer(context.Background(), contract.NewAnswerRequest(id, "1"))
	require.NoError(t, err)

	_, err = executeCmd(t, app, "", "reset", id)
	require.NoError(t, err)

	conv, err := app.Triage.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, conv.State.AnsweredCount())
	assert.Equal(t, domain.CategoryDigestive, conv.Category)
}

func TestPruneCmd(t *testing.T) {
	app := testApp(t)
	startConversation(t, app, "")

	out, err := executeCmd(t, app, "", "prune", "--older-than", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "Pruned 0 conversation(s)")

	_, err = executeCmd(t, app, "", "prune", "--older-than", "0s")
	assert.Error(t, err)
}

func TestScoreCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "score", "--token", "fever,recent_travel", "-t", "mosquito_exposure", "--plain")

	require.NoError(t, err)
	assert.Contains(t, out, "Urgency level: EMERGENCY")
	assert.Contains(t, out, "1. Malaria (")
}

func TestCatalogCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "catalog", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog is valid")

	out, err = executeCmd(t, app, "", "catalog", "conditions")
	require.NoError(t, err)
	assert.Contains(t, out, "malaria")

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	_, err = executeCmd(t, app, "", "catalog", "export", "--out", path)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "", "catalog", "check", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog is valid")
}

func TestCatalogCheck_ReportsProblems(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions:\n  - key: empty\n    prompt: Nothing to choose\n"), 0o644))

	out, err := executeCmd(t, app, "", "catalog", "check", "--file", path)

	require.Error(t, err)
	assert.Contains(t, out, "catalog problem(s)")
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "")

	require.NoError(t, err)
	assert.Contains(t, out, "Symptom triage conversations")
}
