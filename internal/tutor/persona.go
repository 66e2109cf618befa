package tutor

// Persona is a fixed tutoring-style identity controlling the tone of
// generated answers.
type Persona string

const (
	PersonaGeneral   Persona = "General"
	PersonaScientist Persona = "Scientist"
	PersonaELI5      Persona = "ELI5"
	PersonaSocratic  Persona = "Socratic"
)

// DefaultPersona is used when a request doesn't name one.
const DefaultPersona = PersonaGeneral

// personaStyles maps each persona to its teaching-style descriptor.
var personaStyles = map[Persona]string{
	PersonaGeneral:   "helpful and clear",
	PersonaScientist: "academic, precise, and highly technical",
	PersonaELI5:      "extremely simple, using analogies that a 5-year-old would understand",
	PersonaSocratic:  "inquisitive, answering with questions that guide the user to discover the answer themselves",
}

// Style returns the teaching-style descriptor for the persona. Unknown
// personas resolve to "helpful" rather than erroring, so a stale or
// free-form persona value degrades gracefully.
func (p Persona) Style() string {
	if s, ok := personaStyles[p]; ok {
		return s
	}
	return "helpful"
}

// Known reports whether the persona is one of the fixed set.
func (p Persona) Known() bool {
	_, ok := personaStyles[p]
	return ok
}
