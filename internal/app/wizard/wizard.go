package wizard

import (
  "errors"
  "fmt"
  "strings"

  "github.com/samber/lo"
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/stringer"
)

const cancelLiteral = "отмена"

var (
  ErrInputValidation = errors.New("input validation error")
  ErrLookupNotFound  = errors.New("lookup not found")
  ErrCancelled       = errors.New("wizard cancelled")
  ErrInactive        = errors.New("wizard inactive")
)

// RejectError описывает отклоненный ввод, шаг при этом не меняется.
type RejectError struct {
  Kind        error
  Step        models.WizardStep
  Guidance    string
  Suggestions []string
}

func (e *RejectError) Error() string {
  return fmt.Sprintf("wizard step %s: %v", e.Step, e.Kind)
}

func (e *RejectError) Unwrap() error {
  return e.Kind
}

type Reply struct {
  Step         models.WizardStep
  Confirmation string
  Warnings     []string
  Prompt       string
  Completed    bool
}

type outcome struct {
  echo     string
  warnings []string
}

type transition struct {
  step   models.WizardStep
  next   models.WizardStep
  prompt string
  apply  func(input string, params *models.SearchParams) (outcome, error)
}

var transitions = []transition{
  {step: models.StepCountry, next: models.StepDepartureCity, prompt: countryPrompt, apply: applyCountry},
  {step: models.StepDepartureCity, next: models.StepResorts, prompt: departureCityPrompt, apply: applyDepartureCity},
  {step: models.StepResorts, next: models.StepMeals, prompt: resortsPrompt, apply: applyResorts},
  {step: models.StepMeals, next: models.StepAdults, prompt: mealsPrompt, apply: applyMeals},
  {step: models.StepAdults, next: models.StepChildren, prompt: adultsPrompt, apply: applyAdults},
  {step: models.StepChildren, next: models.StepInfants, prompt: childrenPrompt, apply: applyChildren},
  {step: models.StepInfants, next: models.StepNights, prompt: infantsPrompt, apply: applyInfants},
  {step: models.StepNights, next: models.StepHotelCategory, prompt: nightsPrompt, apply: applyNights},
  {step: models.StepHotelCategory, next: models.StepDates, prompt: hotelCategoryPrompt, apply: applyHotelCategory},
  {step: models.StepDates, next: models.StepConfigured, prompt: datesPrompt, apply: applyDates},
}

var transitionsByStep = lo.KeyBy(transitions, func(t transition) models.WizardStep {
  return t.step
})

func Steps() []models.WizardStep {
  return lo.Map(transitions, func(t transition, _ int) models.WizardStep {
    return t.step
  })
}

// Start сбрасывает параметры и возвращает мастер на первый шаг.
func Start() (models.WizardState, Reply) {
  first := transitions[0]

  state := models.WizardState{
    Step: first.step,
  }

  return state, Reply{
    Step:   first.step,
    Prompt: first.prompt,
  }
}

func Prompt(step models.WizardStep) (string, bool) {
  t, ok := transitionsByStep[step]
  return t.prompt, ok
}

// Apply обрабатывает ввод пользователя на текущем шаге. При ошибке
// возвращается исходное состояние.
func Apply(state models.WizardState, input string) (models.WizardState, Reply, error) {
  if !state.IsCollecting() {
    return state, Reply{Step: state.Step}, ErrInactive
  }

  t, ok := transitionsByStep[state.Step]
  if !ok {
    return state, Reply{Step: state.Step}, fmt.Errorf("%w: unknown step %q", ErrInactive, state.Step)
  }

  input = stringer.SanitizeString(input)

  if strings.ToLower(input) == cancelLiteral {
    return models.WizardState{}, Reply{}, ErrCancelled
  }

  params := state.Params

  out, err := t.apply(input, &params)
  if err != nil {
    reply := Reply{Step: state.Step}

    var reject *RejectError
    if errors.As(err, &reject) {
      reject.Step = state.Step
      reply.Prompt = reject.Guidance
    }

    return state, reply, err
  }

  next := models.WizardState{
    Step:   t.next,
    Params: params,
  }

  reply := Reply{
    Step:         next.Step,
    Confirmation: out.echo,
    Warnings:     out.warnings,
  }

  if next.IsConfigured() {
    reply.Completed = true
    reply.Prompt = fmt.Sprintf("✅ Параметры настроены!\n\n%s\nГотовы начать поиск?", models.NewParamsSummary(params))

    return next, reply, nil
  }

  reply.Prompt, _ = Prompt(next.Step)

  return next, reply, nil
}

func rejectInput(guidance string) error {
  return &RejectError{
    Kind:     ErrInputValidation,
    Guidance: guidance,
  }
}

func rejectLookup(guidance string, suggestions []string) error {
  return &RejectError{
    Kind:        ErrLookupNotFound,
    Guidance:    guidance,
    Suggestions: suggestions,
  }
}
