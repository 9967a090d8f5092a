package models

const (
  ActionSetParams       Action = "set_params"
  ActionHelp            Action = "help"
  ActionStartSearch     Action = "start_search"
  ActionStartMonitoring Action = "start_monitoring"
  ActionStopMonitoring  Action = "stop_monitoring"
  ActionBackToStart     Action = "back_to_start"
)

// Action идентифицирует кнопку меню.
type Action string

func (a Action) String() string {
  return string(a)
}

const (
  StepIdle          WizardStep = ""
  StepCountry       WizardStep = "country"
  StepDepartureCity WizardStep = "departure_city"
  StepResorts       WizardStep = "resorts"
  StepMeals         WizardStep = "meals"
  StepAdults        WizardStep = "adults"
  StepChildren      WizardStep = "children"
  StepInfants       WizardStep = "infants"
  StepNights        WizardStep = "nights"
  StepHotelCategory WizardStep = "hotel_category"
  StepDates         WizardStep = "dates"
  StepConfigured    WizardStep = "configured"
)

type WizardStep string

func (s WizardStep) String() string {
  return string(s)
}

type ChatId = int64

type WizardState struct {
  Step   WizardStep   `json:"step"`
  Params SearchParams `json:"params"`
}

func (s WizardState) IsCollecting() bool {
  return s.Step != StepIdle && s.Step != StepConfigured
}

func (s WizardState) IsConfigured() bool {
  return s.Step == StepConfigured
}
