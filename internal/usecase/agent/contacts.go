package agent

import (
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// identifyContacts lists the primary contact from the extracted fields first,
// then staff members matched by the ordered staff patterns. Duplicate names
// keep their first occurrence and the result is capped at maxContacts.
func identifyContacts(transcript string, extracted *entities.ExtractedFields) []entities.ContactRecord {
	contacts := []entities.ContactRecord{}

	if extracted.ContactName != "" {
		contacts = append(contacts, entities.ContactRecord{
			Name:    extracted.ContactName,
			Email:   extracted.ContactEmail,
			Phone:   extracted.ContactPhone,
			Role:    entities.ContactRoleCustomer,
			Company: extracted.CompanyName,
		})
	}

	staffCompany := extracted.CompanyName
	if staffCompany == "" {
		staffCompany = "Internal"
	}

	for _, pattern := range staffPatterns {
		for _, match := range pattern.FindAllStringSubmatch(transcript, -1) {
			name := strings.TrimSpace(match[1])
			if len(name) <= 2 {
				continue
			}
			contacts = append(contacts, entities.ContactRecord{
				Name:    name,
				Role:    entities.ContactRoleStaff,
				Company: staffCompany,
			})
		}
	}

	// Dedupe by exact name, first occurrence wins
	seen := make(map[string]bool, len(contacts))
	unique := make([]entities.ContactRecord, 0, len(contacts))
	for _, c := range contacts {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		unique = append(unique, c)
	}

	if len(unique) > maxContacts {
		unique = unique[:maxContacts]
	}
	return unique
}
