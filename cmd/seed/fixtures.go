package main

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixtures is the document shape of a seed file. Records reference each
// other by name rather than by id so fixtures stay hand-editable.
type Fixtures struct {
	Companies []CompanyFixture `yaml:"companies"`
	Users     []UserFixture    `yaml:"users"`
	Projects  []ProjectFixture `yaml:"projects"`
	Tasks     []TaskFixture    `yaml:"tasks"`
}

type CompanyFixture struct {
	Name          string                `yaml:"name"`
	Subscriptions []SubscriptionFixture `yaml:"subscriptions"`
}

type SubscriptionFixture struct {
	StartDate time.Time `yaml:"start_date"`
	EndDate   time.Time `yaml:"end_date"`
}

type UserFixture struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Company  string `yaml:"company"`
	IsStaff  bool   `yaml:"is_staff"`
}

type ProjectFixture struct {
	Name   string   `yaml:"name"`
	Author string   `yaml:"author"`
	Users  []string `yaml:"users"`
}

type TaskFixture struct {
	Project     string `yaml:"project"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Assignee    string `yaml:"assignee"`
}

func LoadFixtures(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}
