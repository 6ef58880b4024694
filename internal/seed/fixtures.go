package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Fixtures struct {
	Members   []MemberFixture   `yaml:"members"`
	Practices []PracticeFixture `yaml:"practices"`
}

type MemberFixture struct {
	Name       string `yaml:"name"`
	Instrument string `yaml:"instrument"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
}

// PracticeFixture dates are relative so a fixture file never goes stale.
type PracticeFixture struct {
	Title       string `yaml:"title"`
	DaysFromNow int    `yaml:"days_from_now"`
	Time        string `yaml:"time"`
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
}

func Default() Fixtures {
	return Fixtures{
		Members: []MemberFixture{
			{Name: "Nick", Instrument: "Drums", Email: "nick@band.com"},
			{Name: "Keelan", Instrument: "Bass", Email: "keelan@band.com"},
			{Name: "Zombie", Instrument: "Guitar", Email: "zombie@band.com"},
			{Name: "Logan", Instrument: "Guitar", Email: "logan@band.com"},
			{Name: "Halle", Instrument: "Vocals", Email: "halle@band.com"},
			{Name: "Tina Marie", Instrument: "Vocals", Email: "tina.marie@band.com"},
		},
		Practices: []PracticeFixture{
			{Title: "Band Practice", DaysFromNow: 2, Time: "19:00", Location: "Garage", Description: "Practice new songs"},
			{Title: "Band Practice", DaysFromNow: 5, Time: "20:00", Location: "Garage", Description: "Full band rehearsal"},
			{Title: "Band Practice", DaysFromNow: 9, Time: "18:30", Location: "Garage", Description: "Gig prep"},
		},
	}
}

func LoadFile(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return fixtures, nil
}
