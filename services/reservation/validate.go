package reservation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"andeanscapes/models"
)

// ReservationPayload is the shape validated at submission time. The engine
// itself never rejects input; these rules apply only when the caller is
// about to create a payment link.
type ReservationPayload struct {
	SelectedDateID string               `json:"selectedDateId" validate:"required"`
	PeopleCount    int                  `json:"peopleCount" validate:"min=1,max=10"`
	RoomMode       models.RoomMode      `json:"roomMode" validate:"oneof=private couple"`
	TransportMode  models.TransportMode `json:"transportMode" validate:"required,oneof=car_no_4x4 have_4x4 bus"`
	Contact        ContactPayload       `json:"contact"`
	TermsAccepted  bool                 `json:"termsAccepted" validate:"eq=true"`
}

type ContactPayload struct {
	Name  string `json:"name" validate:"min=2"`
	Phone string `json:"phone" validate:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

// PayloadFromState builds the submission payload from a live state.
func PayloadFromState(st models.ReservationState) ReservationPayload {
	return ReservationPayload{
		SelectedDateID: st.SelectedDateID,
		PeopleCount:    st.PeopleCount,
		RoomMode:       st.RoomMode,
		TransportMode:  st.TransportMode,
		Contact: ContactPayload{
			Name:  st.Contact.Name,
			Phone: st.Contact.Phone,
			Email: st.Contact.Email,
		},
		TermsAccepted: st.TermsAccepted,
	}
}

// Loose international phone shape: optional +, then digits, spaces,
// dashes and parentheses, at least seven characters.
var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag or nil func.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// fieldKeys maps struct namespaces to the field keys clients key their
// error display on.
var fieldKeys = map[string]string{
	"SelectedDateID": "selectedDateId",
	"PeopleCount":    "peopleCount",
	"RoomMode":       "roomMode",
	"TransportMode":  "transportMode",
	"Contact.Name":   "contact.name",
	"Contact.Phone":  "contact.phone",
	"Contact.Email":  "contact.email",
	"TermsAccepted":  "termsAccepted",
}

// fieldMessages holds the human-readable message per field and rule. The
// copy matches what the booking site shows.
var fieldMessages = map[string]map[string]string{
	"selectedDateId": {"required": "Selecciona una fecha disponible"},
	"peopleCount": {
		"min": "Mínimo 1 persona",
		"max": "Máximo 10 personas",
	},
	"roomMode":      {"oneof": "Selecciona un modo de habitación válido"},
	"transportMode": {
		"required": "Selecciona tu modo de transporte",
		"oneof":    "Selecciona tu modo de transporte",
	},
	"contact.name":  {"min": "Nombre requerido (mínimo 2 caracteres)"},
	"contact.phone": {"phone": "Celular inválido (mínimo 7 dígitos)"},
	"contact.email": {"email": "Email inválido"},
	"termsAccepted": {"eq": "Debes aceptar los términos y condiciones"},
}

// ValidateReservation checks the payload against the submission rules and
// returns the first human-readable error per field, or nil when valid.
func ValidateReservation(p ReservationPayload) map[string]string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": "Error de validación"}
	}

	out := make(map[string]string)
	for _, fe := range verrs {
		ns := strings.TrimPrefix(fe.StructNamespace(), "ReservationPayload.")
		key, ok := fieldKeys[ns]
		if !ok {
			key = ns
		}
		if _, seen := out[key]; seen {
			continue
		}
		msg := fieldMessages[key][fe.Tag()]
		if msg == "" {
			msg = "Error de validación"
		}
		out[key] = msg
	}
	return out
}
