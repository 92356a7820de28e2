package solutions

// Strategies groups coping strategies by kind.
type Strategies struct {
	Techniques   []string `json:"techniques"`
	Affirmations []string `json:"affirmations"`
	Activities   []string `json:"activities"`
}

// Catalog maps an emotion to its strategies.
type Catalog map[string]Strategies

// DefaultCatalog returns the built-in strategies.
func DefaultCatalog() Catalog {
	return Catalog{
		"anxiety": {
			Techniques: []string{
				"Deep breathing exercises (4-7-8 technique)",
				"Progressive muscle relaxation",
				"Mindfulness meditation",
				"Grounding techniques (5-4-3-2-1 method)",
				"Gentle physical exercise like walking",
			},
			Affirmations: []string{
				"I am safe and in control of my breathing",
				"This feeling will pass, and I am stronger than my anxiety",
				"I choose peace and calm in this moment",
				"I trust in my ability to handle whatever comes my way",
			},
			Activities: []string{
				"Listen to calming music or nature sounds",
				"Practice yoga or gentle stretching",
				"Write in a journal about your feelings",
				"Call a trusted friend or family member",
				"Take a warm bath or shower",
			},
		},
		"depression": {
			Techniques: []string{
				"Cognitive behavioral therapy techniques",
				"Behavioral activation (scheduling pleasant activities)",
				"Gratitude journaling",
				"Social connection and support",
				"Regular sleep schedule maintenance",
			},
			Affirmations: []string{
				"I am worthy of love and happiness",
				"Small steps forward are still progress",
				"I have overcome challenges before and I can do it again",
				"My feelings are valid, and it's okay to not be okay sometimes",
			},
			Activities: []string{
				"Engage in a creative hobby",
				"Spend time in nature or sunlight",
				"Practice self-care routines",
				"Connect with supportive people",
				"Set small, achievable daily goals",
			},
		},
		"stress": {
			Techniques: []string{
				"Time management and prioritization",
				"Stress inoculation training",
				"Relaxation response techniques",
				"Problem-solving strategies",
				"Boundary setting practices",
			},
			Affirmations: []string{
				"I can handle this one step at a time",
				"I have the skills and resources to manage stress",
				"It's okay to ask for help when I need it",
				"I choose to focus on what I can control",
			},
			Activities: []string{
				"Take regular breaks throughout the day",
				"Practice time-blocking for tasks",
				"Engage in physical exercise",
				"Practice saying no to additional commitments",
				"Create a calming evening routine",
			},
		},
		"anger": {
			Techniques: []string{
				"Anger management breathing techniques",
				"Cognitive restructuring",
				"Assertiveness training",
				"Conflict resolution skills",
				"Emotional regulation strategies",
			},
			Affirmations: []string{
				"I can express my feelings in healthy ways",
				"I choose to respond rather than react",
				"My anger is information about my needs",
				"I am in control of my actions and responses",
			},
			Activities: []string{
				"Physical exercise to release tension",
				"Write about your feelings before responding",
				"Practice active listening in conversations",
				"Take a timeout when feeling overwhelmed",
				"Use humor to defuse tense situations",
			},
		},
		"sadness": {
			Techniques: []string{
				"Emotional processing and acceptance",
				"Meaning-making activities",
				"Social support seeking",
				"Self-compassion practices",
				"Grief processing techniques",
			},
			Affirmations: []string{
				"It's natural and healthy to feel sad sometimes",
				"I allow myself to feel and process my emotions",
				"This sadness will not last forever",
				"I am compassionate with myself during difficult times",
			},
			Activities: []string{
				"Allow yourself to cry if needed",
				"Reach out to supportive friends or family",
				"Engage in comforting activities",
				"Practice self-care and gentleness",
				"Consider professional support if needed",
			},
		},
	}
}
