package wizard_test

import (
  "errors"
  "strings"
  "testing"

  "github.com/ushakovn/tourwatch/internal/app/wizard"
  "github.com/ushakovn/tourwatch/internal/models"
)

func applyAll(t *testing.T, inputs ...string) (models.WizardState, wizard.Reply) {
  t.Helper()

  state, reply := wizard.Start()

  for _, input := range inputs {
    var err error

    state, reply, err = wizard.Apply(state, input)
    if err != nil {
      t.Fatalf("Apply(%q) at %s: %v", input, reply.Step, err)
    }
  }

  return state, reply
}

func TestStart(t *testing.T) {
  state, reply := wizard.Start()

  if state.Step != models.StepCountry {
    t.Fatalf("unexpected step: %s", state.Step)
  }
  if !strings.Contains(reply.Prompt, "Шаг 1/10") {
    t.Fatalf("unexpected prompt: %q", reply.Prompt)
  }
  if len(wizard.Steps()) != 10 {
    t.Fatalf("expected 10 steps, got %d", len(wizard.Steps()))
  }
}

func TestApply_HappyPath(t *testing.T) {
  state, reply := applyAll(t,
    "Турция",
    "Москва",
    "Анталья Кемер",
    "AI UAI",
    "2",
    "нет",
    "0",
    "7 14",
    "4 5",
    "2025-06-01 2025-06-15",
  )

  if !state.IsConfigured() || !reply.Completed {
    t.Fatalf("wizard not completed: %s", state.Step)
  }
  if !strings.HasPrefix(reply.Prompt, "✅ Параметры настроены!") {
    t.Fatalf("unexpected prompt: %q", reply.Prompt)
  }

  params := state.Params

  if len(params.Countries) != 1 || params.Countries[0] != "92" {
    t.Fatalf("unexpected countries: %v", params.Countries)
  }
  if params.DepartureCity != "2" {
    t.Fatalf("unexpected departure city: %q", params.DepartureCity)
  }
  if len(params.Resorts) != 2 || params.Resorts[0] != "2161" || params.Resorts[1] != "3839" {
    t.Fatalf("unexpected resorts: %v", params.Resorts)
  }
  if len(params.Meals) != 2 || params.Meals[0] != "5" || params.Meals[1] != "6" {
    t.Fatalf("unexpected meals: %v", params.Meals)
  }
  if *params.Adults != 2 || *params.Children != 0 || *params.Infants != 0 {
    t.Fatalf("unexpected tourists: %d %d %d", *params.Adults, *params.Children, *params.Infants)
  }
  if params.Nights.From != 7 || params.Nights.To != 14 {
    t.Fatalf("unexpected nights: %+v", params.Nights)
  }
  if len(params.HotelCategories) != 2 {
    t.Fatalf("unexpected categories: %v", params.HotelCategories)
  }
  if got := params.CheckIn.From.Format(models.DateLayout); got != "2025-06-01" {
    t.Fatalf("unexpected check in: %s", got)
  }
  if err := params.Validate(); err != nil {
    t.Fatalf("params must be valid: %v", err)
  }
}

func TestApply_RejectKeepsState(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва", "нет", "AI")

  for _, input := range []string{"0", "-1", "два", "", "2.5"} {
    next, reply, err := wizard.Apply(state, input)
    if !errors.Is(err, wizard.ErrInputValidation) {
      t.Fatalf("Apply(%q): expected ErrInputValidation, got %v", input, err)
    }
    if next.Step != state.Step || next.Params.Adults != nil {
      t.Fatalf("Apply(%q): state changed", input)
    }
    if !strings.Contains(reply.Prompt, "Введите число больше 0") {
      t.Fatalf("Apply(%q): unexpected guidance %q", input, reply.Prompt)
    }
  }
}

func TestApply_LookupSuggestions(t *testing.T) {
  state, _ := wizard.Start()

  next, reply, err := wizard.Apply(state, "тур")
  if !errors.Is(err, wizard.ErrLookupNotFound) {
    t.Fatalf("expected ErrLookupNotFound, got %v", err)
  }
  if next.Step != models.StepCountry {
    t.Fatalf("step changed: %s", next.Step)
  }

  var reject *wizard.RejectError
  if !errors.As(err, &reject) {
    t.Fatalf("expected RejectError, got %T", err)
  }
  if len(reject.Suggestions) == 0 || reject.Suggestions[0] != "турция" {
    t.Fatalf("unexpected suggestions: %v", reject.Suggestions)
  }
  if !strings.Contains(reply.Prompt, "• турция") {
    t.Fatalf("unexpected guidance: %q", reply.Prompt)
  }

  _, reply, _ = wizard.Apply(state, "атлантида")
  if !strings.Contains(reply.Prompt, "не найдено") {
    t.Fatalf("expected empty suggestions marker: %q", reply.Prompt)
  }
}

func TestApply_PartialWarnings(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва")

  next, reply, err := wizard.Apply(state, "Анталья Атлантида")
  if err != nil {
    t.Fatalf("unexpected err: %v", err)
  }
  if len(next.Params.Resorts) != 1 {
    t.Fatalf("unexpected resorts: %v", next.Params.Resorts)
  }
  if len(reply.Warnings) != 1 || !strings.Contains(reply.Warnings[0], "атлантида") {
    t.Fatalf("unexpected warnings: %v", reply.Warnings)
  }

  state, _ = applyAll(t, "Турция", "Москва", "нет", "AI", "2", "1", "0", "7 10")

  next, reply, err = wizard.Apply(state, "3 9 x 5")
  if err != nil {
    t.Fatalf("unexpected err: %v", err)
  }
  if len(next.Params.HotelCategories) != 2 {
    t.Fatalf("unexpected categories: %v", next.Params.HotelCategories)
  }
  if len(reply.Warnings) != 1 || !strings.Contains(reply.Warnings[0], "9, x") {
    t.Fatalf("unexpected warnings: %v", reply.Warnings)
  }
}

func TestApply_MultiWordResorts(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва")

  next, reply, err := wizard.Apply(state, "Гранд  Валира Кемер")
  if err != nil {
    t.Fatalf("unexpected err: %v", err)
  }
  if strings.Join(next.Params.Resorts, ",") != "62,3839" {
    t.Fatalf("unexpected resorts: %v", next.Params.Resorts)
  }
  if len(reply.Warnings) != 0 {
    t.Fatalf("unexpected warnings: %v", reply.Warnings)
  }
  if !strings.Contains(reply.Confirmation, "гранд валира, кемер") {
    t.Fatalf("unexpected confirmation: %q", reply.Confirmation)
  }

  next, reply, err = wizard.Apply(state, "марса алам атлантида")
  if err != nil {
    t.Fatalf("unexpected err: %v", err)
  }
  if strings.Join(next.Params.Resorts, ",") != "592" {
    t.Fatalf("unexpected resorts: %v", next.Params.Resorts)
  }
  if len(reply.Warnings) != 1 || !strings.Contains(reply.Warnings[0], "атлантида") {
    t.Fatalf("unexpected warnings: %v", reply.Warnings)
  }
}

func TestApply_ClearLiterals(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва")

  next, _, err := wizard.Apply(state, "Не важно")
  if err != nil || next.Params.Resorts != nil {
    t.Fatalf("resorts not cleared: %v %v", next.Params.Resorts, err)
  }

  next, reply, err := wizard.Apply(next, "любой")
  if err != nil || next.Params.Meals != nil {
    t.Fatalf("meals not cleared: %v %v", next.Params.Meals, err)
  }
  if reply.Confirmation != "✅ Питание: Любой" {
    t.Fatalf("unexpected confirmation: %q", reply.Confirmation)
  }
}

func TestApply_NightsUnordered(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва", "нет", "AI", "2", "0", "0")

  next, _, err := wizard.Apply(state, "14 7")
  if err != nil {
    t.Fatalf("unexpected err: %v", err)
  }
  if next.Params.Nights.From != 14 || next.Params.Nights.To != 7 {
    t.Fatalf("unexpected nights: %+v", next.Params.Nights)
  }

  if _, _, err = wizard.Apply(state, "7"); !errors.Is(err, wizard.ErrInputValidation) {
    t.Fatalf("expected ErrInputValidation, got %v", err)
  }
}

func TestApply_DatesOrder(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва", "нет", "AI", "2", "0", "0", "7 14", "5")

  next, reply, err := wizard.Apply(state, "2025-06-15 2025-06-01")
  if !errors.Is(err, wizard.ErrInputValidation) {
    t.Fatalf("expected ErrInputValidation, got %v", err)
  }
  if next.Step != models.StepDates {
    t.Fatalf("step changed: %s", next.Step)
  }
  if !strings.Contains(reply.Prompt, "Дата начала должна быть раньше") {
    t.Fatalf("unexpected guidance: %q", reply.Prompt)
  }

  if _, _, err = wizard.Apply(state, "01.06.2025 15.06.2025"); !errors.Is(err, wizard.ErrInputValidation) {
    t.Fatalf("expected ErrInputValidation, got %v", err)
  }

  next, _, err = wizard.Apply(state, "2025-06-01 2025-06-01")
  if err != nil || !next.IsConfigured() {
    t.Fatalf("same day range must be accepted: %v", err)
  }
}

func TestApply_Cancel(t *testing.T) {
  state, _ := applyAll(t, "Турция", "Москва")

  next, _, err := wizard.Apply(state, "  Отмена ")
  if !errors.Is(err, wizard.ErrCancelled) {
    t.Fatalf("expected ErrCancelled, got %v", err)
  }
  if next.Step != models.StepIdle {
    t.Fatalf("expected idle state, got %s", next.Step)
  }
}

func TestApply_Inactive(t *testing.T) {
  if _, _, err := wizard.Apply(models.WizardState{}, "Турция"); !errors.Is(err, wizard.ErrInactive) {
    t.Fatalf("expected ErrInactive, got %v", err)
  }

  configured := models.WizardState{Step: models.StepConfigured}
  if _, _, err := wizard.Apply(configured, "Турция"); !errors.Is(err, wizard.ErrInactive) {
    t.Fatalf("expected ErrInactive, got %v", err)
  }
}

func TestStart_Restart(t *testing.T) {
  configured, _ := applyAll(t, "Турция", "Москва", "нет", "AI", "2", "0", "0", "7 14", "5", "2025-06-01 2025-06-15")
  if !configured.IsConfigured() {
    t.Fatalf("wizard not configured")
  }

  state, _ := wizard.Start()
  if state.Step != models.StepCountry || state.Params.Countries != nil {
    t.Fatalf("restart must reset params: %+v", state)
  }
}
