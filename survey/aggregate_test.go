package survey

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/KunalBhamoriya/survey-maker/model"
)

func seedSurvey(st *stubStore, questions ...model.Question) model.Survey {
	survey := model.Survey{
		ID:        "s1",
		Title:     "Test survey",
		OwnerID:   "owner-1",
		Questions: questions,
	}
	st.surveys[survey.ID] = survey
	return survey
}

func seedResponses(st *stubStore, answers ...map[string]any) {
	for i, a := range answers {
		st.responses = append(st.responses, model.Response{
			ID:       "r" + string(rune('1'+i)),
			SurveyID: "s1",
			Answers:  a,
		})
	}
}

func TestResultsSurveyNotFound(t *testing.T) {
	svc := newTestService(newStubStore())

	_, err := svc.Results(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResultsSingleChoiceRoundTrip(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionRadio, Title: "Favorite color",
		Options: []string{"Red", "Blue", "Green"},
	})
	seedResponses(st, map[string]any{"q1": "Blue"})

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalResponses != 1 {
		t.Fatalf("totalResponses = %d, want 1", results.TotalResponses)
	}

	got := results.Questions[0].Options
	want := []OptionCount{
		{Option: "Red", Count: 0, Percentage: 0},
		{Option: "Blue", Count: 1, Percentage: 100.0},
		{Option: "Green", Count: 0, Percentage: 0},
	}
	assertOptions(t, got, want)
}

func TestResultsTextOmitsEmptyAnswers(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{ID: "q1", Type: model.QuestionText, Title: "Say something"})
	seedResponses(st,
		map[string]any{"q1": "first"},
		map[string]any{},
		map[string]any{"q1": "third"},
	)

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalResponses != 3 {
		t.Fatalf("totalResponses = %d, want 3", results.TotalResponses)
	}

	texts := results.Questions[0].Texts
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "third" {
		t.Fatalf("texts = %v, want [first third]", texts)
	}
}

func TestResultsTextSkipsEmptyString(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{ID: "q1", Type: model.QuestionText, Title: "Say something"})
	seedResponses(st, map[string]any{"q1": ""})

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results.Questions[0].Texts) != 0 {
		t.Fatalf("texts = %v, want empty", results.Questions[0].Texts)
	}
}

func TestResultsMultiChoiceCounts(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionCheckbox, Title: "Pick any",
		Options: []string{"A", "B"},
	})
	seedResponses(st,
		map[string]any{"q1": []any{"A", "B"}},
		map[string]any{"q1": []any{"A"}},
	)

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	assertOptions(t, results.Questions[0].Options, []OptionCount{
		{Option: "A", Count: 2, Percentage: 100.0},
		{Option: "B", Count: 1, Percentage: 50.0},
	})
}

func TestResultsMultiChoiceDuplicatesDoNotInflate(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionCheckbox, Title: "Pick any",
		Options: []string{"A", "B"},
	})
	seedResponses(st, map[string]any{"q1": []any{"A", "A", "A"}})

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	assertOptions(t, results.Questions[0].Options, []OptionCount{
		{Option: "A", Count: 1, Percentage: 100.0},
		{Option: "B", Count: 0, Percentage: 0},
	})
}

func TestResultsMultiChoiceStrayScalar(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionCheckbox, Title: "Pick any",
		Options: []string{"A", "B"},
	})
	seedResponses(st, map[string]any{"q1": "A"})

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	assertOptions(t, results.Questions[0].Options, []OptionCount{
		{Option: "A", Count: 1, Percentage: 100.0},
		{Option: "B", Count: 0, Percentage: 0},
	})
}

func TestResultsUndeclaredOptionIgnored(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionRadio, Title: "Pick one",
		Options: []string{"Yes", "No"},
	})
	seedResponses(st,
		map[string]any{"q1": "Maybe"},
		map[string]any{"q1": "Yes"},
	)

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalResponses != 2 {
		t.Fatalf("totalResponses = %d, want 2", results.TotalResponses)
	}

	// the undeclared "Maybe" answer counts toward the denominator only
	assertOptions(t, results.Questions[0].Options, []OptionCount{
		{Option: "Yes", Count: 1, Percentage: 50.0},
		{Option: "No", Count: 0, Percentage: 0},
	})

	sum := 0
	for _, oc := range results.Questions[0].Options {
		sum += oc.Count
	}
	if sum > results.TotalResponses {
		t.Fatalf("single-choice counts sum %d exceeds total %d", sum, results.TotalResponses)
	}
}

func TestResultsNoResponsesNoDivision(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionRadio, Title: "Pick one",
		Options: []string{"Yes", "No"},
	})

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if results.TotalResponses != 0 {
		t.Fatalf("totalResponses = %d, want 0", results.TotalResponses)
	}
	for _, oc := range results.Questions[0].Options {
		if oc.Percentage != 0 {
			t.Fatalf("percentage for %s = %v, want 0", oc.Option, oc.Percentage)
		}
	}
}

func TestResultsPercentageRounding(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: model.QuestionRadio, Title: "Pick one",
		Options: []string{"A", "B"},
	})
	seedResponses(st,
		map[string]any{"q1": "A"},
		map[string]any{"q1": "B"},
		map[string]any{"q1": "B"},
	)

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	assertOptions(t, results.Questions[0].Options, []OptionCount{
		{Option: "A", Count: 1, Percentage: 33.3},
		{Option: "B", Count: 2, Percentage: 66.7},
	})
}

func TestResultsUnknownQuestionType(t *testing.T) {
	st := newStubStore()
	seedSurvey(st, model.Question{
		ID: "q1", Type: "rating", Title: "Rate it",
		Options: []string{"1", "2", "3"},
	})
	seedResponses(st, map[string]any{"q1": "2"})

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	qr := results.Questions[0]
	if qr.Texts != nil || qr.Options != nil {
		t.Fatalf("unknown type produced a tally: texts=%v options=%v", qr.Texts, qr.Options)
	}
	if results.TotalResponses != 1 {
		t.Fatalf("totalResponses = %d, want 1", results.TotalResponses)
	}
}

func TestResultsQuestionOrderPreserved(t *testing.T) {
	st := newStubStore()
	seedSurvey(st,
		model.Question{ID: "q2", Type: model.QuestionText, Title: "Second first"},
		model.Question{ID: "q1", Type: model.QuestionText, Title: "First second"},
	)

	results, err := newTestService(st).Results(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results.Questions) != 2 ||
		results.Questions[0].Question.ID != "q2" ||
		results.Questions[1].Question.ID != "q1" {
		t.Fatalf("question order not preserved: %+v", results.Questions)
	}
}

func assertOptions(t *testing.T, got, want []OptionCount) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("options = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("option %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
