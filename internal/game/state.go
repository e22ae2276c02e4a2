// Package game implements the semester simulation engine: round resolution,
// item hook dispatch, course effects and the block lifecycle.
//
// Every exported operation is a transform from one *State to the next. The
// input state is never modified; invalid actions return the input unchanged.
package game

import (
	"maps"
	"slices"
)

// InventorySize is the number of inventory slots.
const InventorySize = 36

// Action is the player's choice for the pending lecture.
type Action string

const (
	ActionAttend Action = "attend"
	ActionSkip   Action = "skip"
)

// Result is the outcome of a resolved lecture.
// Skips always succeed; ResultFailure for a skip is reserved and never produced.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

// State is the complete state of a run.
type State struct {
	Block             int         `yaml:"block" json:"block"`
	LecturesLeft      int         `yaml:"lecturesLeft" json:"lecturesLeft"`
	Courses           []Course    `yaml:"courses" json:"courses"`
	NextLecture       *Lecture    `yaml:"nextLecture" json:"nextLecture"`
	Energy            float64     `yaml:"energy" json:"energy"`
	MaxEnergy         float64     `yaml:"maxEnergy" json:"maxEnergy"`
	EnergyPerSkip     float64     `yaml:"energyPerSkip" json:"energyPerSkip"`
	Cash              float64     `yaml:"cash" json:"cash"`
	Procrastinations  float64     `yaml:"procrastinations" json:"procrastinations"`
	Items             []*ItemData `yaml:"items" json:"items"`
	SelectedItemSlots []int       `yaml:"selectedItemSlots" json:"selectedItemSlots"`
	MaxActivatedItems int         `yaml:"maxActivatedItems" json:"maxActivatedItems"`
	Quests            []Quest     `yaml:"quests" json:"quests"`
	ExamsAttended     bool        `yaml:"examsAttended" json:"examsAttended"`
	ExamResults       []bool      `yaml:"examResults" json:"examResults"`
	Log               []LogEntry  `yaml:"log" json:"log"`
	Score             float64     `yaml:"score" json:"score"`
	NextItemID        int         `yaml:"nextItemId" json:"nextItemId"`
}

// Course is a progress track generated at block start.
// Understandings may exceed Goal.
type Course struct {
	ID                            string                `yaml:"id" json:"id"`
	Title                         string                `yaml:"title" json:"title"`
	Color                         string                `yaml:"color" json:"color"`
	Hue                           float64               `yaml:"hue" json:"hue"`
	Understandings                float64               `yaml:"understandings" json:"understandings"`
	Goal                          float64               `yaml:"goal" json:"goal"`
	OriginalGoal                  float64               `yaml:"originalGoal" json:"originalGoal"`
	Effects                       map[string]EffectData `yaml:"effects" json:"effects"`
	EffectSeq                     int                   `yaml:"effectSeq" json:"effectSeq"`
	MaxUnderstandingsPerLecture   float64               `yaml:"maxUnderstandingsPerLecture" json:"maxUnderstandingsPerLecture"`
	MaxProcrastinationsPerLecture float64               `yaml:"maxProcrastinationsPerLecture" json:"maxProcrastinationsPerLecture"`
	MaxEnergyCostPerLecture       float64               `yaml:"maxEnergyCostPerLecture" json:"maxEnergyCostPerLecture"`
}

// EffectData is a named stack attached to a course.
// An effect whose value drops to zero or below is removed immediately.
type EffectData struct {
	ID    string  `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// Lecture is the pending offer the player attends or skips.
// Times are minutes since midnight.
type Lecture struct {
	CourseIndex             int     `yaml:"courseIndex" json:"courseIndex"`
	StartTime               int     `yaml:"startTime" json:"startTime"`
	EndTime                 int     `yaml:"endTime" json:"endTime"`
	PotentialUnderstandings float64 `yaml:"potentialUnderstandings" json:"potentialUnderstandings"`
	UnderstandChance        float64 `yaml:"understandChance" json:"understandChance"`
	EnergyCost              float64 `yaml:"energyCost" json:"energyCost"`
	ProcrastinationValue    float64 `yaml:"procrastinationValue" json:"procrastinationValue"`
}

// LectureResult is the transient outcome of one round.
type LectureResult struct {
	Action                 Action
	Result                 Result
	CourseIndex            int
	GainedUnderstandings   float64
	GainedProcrastinations float64
	EnergyChange           float64
}

// ItemData is one item instance in the inventory.
// Name is the catalog key; ID is the instance identity.
type ItemData struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Rarity        int     `yaml:"rarity" json:"rarity"`
	DropWeight    float64 `yaml:"dropWeight" json:"dropWeight"`
	Level         int     `yaml:"level" json:"level"`
	StartingLevel int     `yaml:"startingLevel" json:"startingLevel"`
	Memory        Memory  `yaml:"memory" json:"memory"`
}

// Quest trades costs for rewards. Fulfilled quests are removed.
type Quest struct {
	ID      string     `yaml:"id" json:"id"`
	Costs   []Currency `yaml:"costs" json:"costs"`
	Rewards []Currency `yaml:"rewards" json:"rewards"`
	Color   string     `yaml:"color" json:"color"`
}

// LogEntry is one line of the round log. Message may contain **bold** markup.
type LogEntry struct {
	Message string `yaml:"message" json:"message"`
	Color   string `yaml:"color" json:"color"`
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s

	if s.Courses != nil {
		c.Courses = make([]Course, len(s.Courses))
		for i := range s.Courses {
			c.Courses[i] = s.Courses[i].Clone()
		}
	}

	if s.NextLecture != nil {
		l := *s.NextLecture
		c.NextLecture = &l
	}

	if s.Items != nil {
		c.Items = make([]*ItemData, len(s.Items))
		for i, item := range s.Items {
			if item != nil {
				c.Items[i] = item.Clone()
			}
		}
	}

	if s.Quests != nil {
		c.Quests = make([]Quest, len(s.Quests))
		for i, q := range s.Quests {
			c.Quests[i] = q.Clone()
		}
	}

	c.SelectedItemSlots = slices.Clone(s.SelectedItemSlots)
	c.ExamResults = slices.Clone(s.ExamResults)
	c.Log = slices.Clone(s.Log)
	return &c
}

// Clone returns a deep copy of the course.
func (c Course) Clone() Course {
	c.Effects = maps.Clone(c.Effects)
	return c
}

// Clone returns a deep copy of the item.
func (it *ItemData) Clone() *ItemData {
	c := *it
	c.Memory = it.Memory.Clone()
	return &c
}

// Clone returns a deep copy of the quest.
func (q Quest) Clone() Quest {
	q.Costs = slices.Clone(q.Costs)
	q.Rewards = slices.Clone(q.Rewards)
	return q
}

// IsSelected reports whether the item in slot is activated for the next round.
func (s *State) IsSelected(slot int) bool {
	return slices.Contains(s.SelectedItemSlots, slot)
}

// CurrentCourse returns the course of the pending lecture, or nil.
func (s *State) CurrentCourse() *Course {
	if s.NextLecture == nil {
		return nil
	}
	return s.Course(s.NextLecture.CourseIndex)
}

// Course returns the course at index, or nil if out of range.
func (s *State) Course(index int) *Course {
	if index < 0 || index >= len(s.Courses) {
		return nil
	}
	return &s.Courses[index]
}

// Logf appends a log entry. Used by item hooks that produce more than one line.
func (s *State) Logf(color, message string) {
	if message == "" {
		return
	}
	s.Log = append(s.Log, LogEntry{Message: message, Color: color})
}

// pushLog records an entry outside round resolution. The log is newest
// first once a round has ended, so the entry goes to the front.
func (s *State) pushLog(color, message string) {
	s.Log = append([]LogEntry{{Message: message, Color: color}}, s.Log...)
}
