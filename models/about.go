package models

import "time"

// AboutKey locates the singleton About document; the collection holds exactly one
// document with this key.
const AboutKey = "default"

type AboutIntro struct {
	Name        string `bson:"name" json:"name"`
	Role        string `bson:"role" json:"role"`
	Location    string `bson:"location" json:"location"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	GithubURL   string `bson:"githubUrl" json:"githubUrl"`
	LinkedinURL string `bson:"linkedinUrl" json:"linkedinUrl"`
	Summary     string `bson:"summary" json:"summary"`
	CTA         string `bson:"cta" json:"cta"`
}

type AboutStat struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

type AboutExperience struct {
	Company    string   `bson:"company" json:"company"`
	Role       string   `bson:"role" json:"role"`
	Period     string   `bson:"period" json:"period"`
	Subtitle   string   `bson:"subtitle" json:"subtitle"`
	Highlights []string `bson:"highlights" json:"highlights"`
}

type AboutProject struct {
	Title      string   `bson:"title" json:"title"`
	Subtitle   string   `bson:"subtitle" json:"subtitle"`
	Highlights []string `bson:"highlights" json:"highlights"`
}

type AboutEducation struct {
	School string `bson:"school" json:"school"`
	Degree string `bson:"degree" json:"degree"`
	Period string `bson:"period" json:"period"`
}

type AboutStackGroup struct {
	Label string   `bson:"label" json:"label"`
	Items []string `bson:"items" json:"items"`
}

type AboutLanguage struct {
	Language string `bson:"language" json:"language"`
	Level    string `bson:"level" json:"level"`
}

// About is the singleton document backing the public About page. The key field is
// internal and never serialized to clients.
type About struct {
	Key        string            `bson:"key" json:"-"`
	Intro      AboutIntro        `bson:"intro" json:"intro"`
	Stats      []AboutStat       `bson:"stats" json:"stats"`
	Experience []AboutExperience `bson:"experience" json:"experience"`
	Projects   []AboutProject    `bson:"projects" json:"projects"`
	Education  AboutEducation    `bson:"education" json:"education"`
	TechStack  []AboutStackGroup `bson:"techStack" json:"techStack"`
	Languages  []AboutLanguage   `bson:"languages" json:"languages"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// AboutPatch carries a partial update; nil sections are left untouched. A supplied
// section replaces the stored one wholesale, with zero values standing in for
// omitted nested fields.
type AboutPatch struct {
	Intro      *AboutIntro        `json:"intro"`
	Stats      *[]AboutStat       `json:"stats"`
	Experience *[]AboutExperience `json:"experience"`
	Projects   *[]AboutProject    `json:"projects"`
	Education  *AboutEducation    `json:"education"`
	TechStack  *[]AboutStackGroup `json:"techStack"`
	Languages  *[]AboutLanguage   `json:"languages"`
}
