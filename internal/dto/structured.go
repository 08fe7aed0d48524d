package dto

import (
	"encoding/json"
	"fmt"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// Structured extraction document types.
const (
	StructuredBankStatement          = "bank_statement"
	StructuredPayslip                = "payslip"
	StructuredIDDocument             = "id_document"
	StructuredProofOfResidence       = "proof_of_residence"
	StructuredBankConfirmationLetter = "bank_confirmation_letter"
	StructuredOther                  = "other"
)

// StructuredResult is a tagged union discriminated by the docType field.
// Exactly one variant is set; unknown document types decode into Other so a
// newer agent cannot break older consumers.
type StructuredResult struct {
	DocType                string
	BankStatement          *BankStatementData
	Payslip                *PayslipData
	IDDocument             *IDDocumentData
	ProofOfResidence       *ProofOfResidenceData
	BankConfirmationLetter *BankConfirmationLetterData
	Other                  *OtherDocumentData
}

type BankStatementData struct {
	AccountHolder  string               `json:"account_holder"`
	AccountNumber  string               `json:"account_number"`
	BankName       string               `json:"bank_name"`
	PeriodStart    string               `json:"period_start,omitempty"`
	PeriodEnd      string               `json:"period_end,omitempty"`
	OpeningBalance decimal.Decimal      `json:"opening_balance"`
	ClosingBalance decimal.Decimal      `json:"closing_balance"`
	Transactions   []models.Transaction `json:"transactions,omitempty"`
}

type PayslipData struct {
	EmployeeName string             `json:"employee_name"`
	EmployerName string             `json:"employer_name"`
	PayDate      string             `json:"pay_date,omitempty"`
	GrossPay     decimal.Decimal    `json:"gross_pay"`
	NetPay       decimal.Decimal    `json:"net_pay"`
	Deductions   []PayslipDeduction `json:"deductions,omitempty"`
}

type PayslipDeduction struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type IDDocumentData struct {
	FullName    string `json:"full_name"`
	IDNumber    string `json:"id_number"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
}

type ProofOfResidenceData struct {
	FullName  string `json:"full_name"`
	Address   string `json:"address"`
	Issuer    string `json:"issuer,omitempty"`
	IssueDate string `json:"issue_date,omitempty"`
}

type BankConfirmationLetterData struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	AccountType   string `json:"account_type,omitempty"`
	IssueDate     string `json:"issue_date,omitempty"`
}

// OtherDocumentData keeps the raw field set of document types this build
// has no dedicated variant for.
type OtherDocumentData struct {
	Fields map[string]json.RawMessage `json:"-"`
}

func (s StructuredResult) MarshalJSON() ([]byte, error) {
	var body any
	switch s.DocType {
	case StructuredBankStatement:
		body = s.BankStatement
	case StructuredPayslip:
		body = s.Payslip
	case StructuredIDDocument:
		body = s.IDDocument
	case StructuredProofOfResidence:
		body = s.ProofOfResidence
	case StructuredBankConfirmationLetter:
		body = s.BankConfirmationLetter
	default:
		merged := make(map[string]json.RawMessage)
		if s.Other != nil {
			for k, v := range s.Other.Fields {
				merged[k] = v
			}
		}
		docType := s.DocType
		if docType == "" {
			docType = StructuredOther
		}
		merged["docType"] = json.RawMessage(fmt.Sprintf("%q", docType))
		return json.Marshal(merged)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]json.RawMessage)
	if string(b) != "null" {
		if err := json.Unmarshal(b, &merged); err != nil {
			return nil, err
		}
	}
	merged["docType"] = json.RawMessage(fmt.Sprintf("%q", s.DocType))
	return json.Marshal(merged)
}

func (s *StructuredResult) UnmarshalJSON(data []byte) error {
	var tag struct {
		DocType string `json:"docType"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	*s = StructuredResult{DocType: tag.DocType}
	switch tag.DocType {
	case StructuredBankStatement:
		s.BankStatement = &BankStatementData{}
		return json.Unmarshal(data, s.BankStatement)
	case StructuredPayslip:
		s.Payslip = &PayslipData{}
		return json.Unmarshal(data, s.Payslip)
	case StructuredIDDocument:
		s.IDDocument = &IDDocumentData{}
		return json.Unmarshal(data, s.IDDocument)
	case StructuredProofOfResidence:
		s.ProofOfResidence = &ProofOfResidenceData{}
		return json.Unmarshal(data, s.ProofOfResidence)
	case StructuredBankConfirmationLetter:
		s.BankConfirmationLetter = &BankConfirmationLetterData{}
		return json.Unmarshal(data, s.BankConfirmationLetter)
	default:
		fields := make(map[string]json.RawMessage)
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		delete(fields, "docType")
		s.Other = &OtherDocumentData{Fields: fields}
		return nil
	}
}
