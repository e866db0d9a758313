package dto

type ListVehiclesResponse struct {
	Vehicles []string `json:"vehicles"`
}

type AssignmentResponse struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Route string `json:"route"`
	Today bool   `json:"today"`
}

type MonthResponse struct {
	Label string               `json:"label"`
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Front []AssignmentResponse `json:"front"`
	Back  []AssignmentResponse `json:"back"`
}

type RosterResponse struct {
	Vehicle     string               `json:"vehicle"`
	Start       string               `json:"start"`
	End         string               `json:"end"`
	Today       string               `json:"today"`
	Assignments []AssignmentResponse `json:"assignments"`
	Months      []MonthResponse      `json:"months"`
}
