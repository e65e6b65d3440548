package tui

import "github.com/MKhiriev/court-fund/models"

type loginDoneMsg struct {
	token string
	err   error
}

type dataLoadedMsg struct {
	fund models.Fund
	fees []models.ServiceFee
	err  error
}

type feePaidMsg struct {
	fee models.ServiceFee
	err error
}

type copiedMsg struct {
	err error
}
