package models

import "time"

type Company string

const (
	CompanyAlfaBank   Company = "AlfaBank"
	CompanyMTS        Company = "MTS"
	CompanyRostelecom Company = "Rostelecom"
	CompanySber       Company = "Sber"
	CompanyTinkoff    Company = "Tinkoff"
	CompanyVK         Company = "VK"
	CompanyYandex     Company = "Yandex"
)

func (c Company) Valid() bool {
	switch c {
	case CompanyAlfaBank, CompanyMTS, CompanyRostelecom, CompanySber, CompanyTinkoff, CompanyVK, CompanyYandex:
		return true
	}
	return false
}

// CountryNotSelected is the sentinel a fresh profile carries until the
// owner picks a country.
const CountryNotSelected = "Not selected"

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	Picture      *string   `json:"picture"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Profile struct {
	UserID    string  `json:"-"`
	Status    *string `json:"status"`
	Position  *string `json:"position"`
	Company   *string `json:"company"`
	Country   string  `json:"country"`
	Education *string `json:"education"`
	About     *string `json:"about"`
}

type Employment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Company    Company   `json:"company"`
	Position   string    `json:"position"`
	EmployedOn time.Time `json:"employedOn"`
}

type Follow struct {
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
}

// UserSummary is the display projection embedded in feeds, follower
// lists and dialogs.
type UserSummary struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Picture   *string `json:"picture"`
}
