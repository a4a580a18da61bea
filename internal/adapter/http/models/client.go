package models

import (
	"errors"
	"strings"
)

type RegisterClientRequest struct {
	ManagerID      string `json:"managerId"`
	TaxCode        string `json:"taxCode"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	TransactionPin string `json:"transactionPin"`
}

func (r RegisterClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if len(strings.TrimSpace(r.TransactionPin)) < 4 {
		errs = append(errs, "transactionPin must be at least 4 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ClientResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
