package engine

// Question is one multiple-choice quiz item. The bank is static and loaded
// once; per-session selection state lives in QuizSession, never here.
type Question struct {
	Prompt  string
	Choices []string
	Correct int
}

var quizBank = []Question{
	{
		Prompt: "What is space weather?",
		Choices: []string{
			"Weather conditions in space",
			"Environmental conditions in space influenced by solar activity",
			"Weather on other planets",
			"Space storms only",
		},
		Correct: 1,
	},
	{
		Prompt: "What can solar flares damage?",
		Choices: []string{
			"Only Earth's atmosphere",
			"Satellites and expose astronauts to radiation",
			"Only power grids",
			"Nothing significant",
		},
		Correct: 1,
	},
	{
		Prompt: "How does space weather affect aviation?",
		Choices: []string{
			"It doesn't affect aviation",
			"It disrupts GPS and radio communications",
			"It only affects space flights",
			"It improves flight efficiency",
		},
		Correct: 1,
	},
	{
		Prompt: "What can geomagnetic storms cause?",
		Choices: []string{
			"Only beautiful auroras",
			"Power grid blackouts and transformer damage",
			"Only GPS disruptions",
			"Nothing harmful",
		},
		Correct: 1,
	},
	{
		Prompt: "How does space weather affect farming?",
		Choices: []string{
			"It doesn't affect farming",
			"It disrupts GPS systems used in precision agriculture",
			"It only affects crop growth",
			"It improves farming efficiency",
		},
		Correct: 1,
	},
	{
		Prompt: "What creates auroras?",
		Choices: []string{
			"Only solar flares",
			"Charged particles from the Sun interacting with Earth's magnetic field",
			"Only geomagnetic storms",
			"Atmospheric pressure changes",
		},
		Correct: 1,
	},
	{
		Prompt: "What is a CME?",
		Choices: []string{
			"A type of satellite",
			"Coronal Mass Ejection - a burst of solar wind",
			"A communication system",
			"A type of aurora",
		},
		Correct: 1,
	},
	{
		Prompt: "How do astronauts protect themselves from space weather?",
		Choices: []string{
			"They can't protect themselves",
			"They take shelter in protected parts of the station",
			"They use special suits",
			"They return to Earth immediately",
		},
		Correct: 1,
	},
	{
		Prompt: "What monitors space weather?",
		Choices: []string{
			"Only NASA",
			"NASA, NOAA, and other space agencies",
			"Only weather stations",
			"Only satellites",
		},
		Correct: 1,
	},
	{
		Prompt: "Why is space weather important to monitor?",
		Choices: []string{
			"It's not important",
			"It can affect technology, communications, and power systems on Earth",
			"Only for space missions",
			"Only for scientific research",
		},
		Correct: 1,
	},
}

// QuizQuestions returns a copy of the static bank.
func QuizQuestions() []Question {
	return append([]Question{}, quizBank...)
}
