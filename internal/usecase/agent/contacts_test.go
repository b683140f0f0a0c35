package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsight/callsight/internal/domain/entities"
)

func TestIdentifyContacts_PrimaryContactFirst(t *testing.T) {
	extracted := &entities.ExtractedFields{
		ContactName:  "John Smith",
		ContactEmail: "john@example.com",
		ContactPhone: "+15551234567",
		CompanyName:  "Acme Corp",
	}

	contacts := identifyContacts("no staff mentioned here", extracted)

	require.Len(t, contacts, 1)
	assert.Equal(t, "John Smith", contacts[0].Name)
	assert.Equal(t, "john@example.com", contacts[0].Email)
	assert.Equal(t, entities.ContactRoleCustomer, contacts[0].Role)
	assert.Equal(t, "Acme Corp", contacts[0].Company)
}

func TestIdentifyContacts_StaffPatterns(t *testing.T) {
	transcript := "Agent Sarah: how can I help?\nCustomer: hi, who am I speaking with?\nAgent: this is Mike Johnson"

	contacts := identifyContacts(transcript, &entities.ExtractedFields{})

	require.Len(t, contacts, 2)
	assert.Equal(t, "Sarah", contacts[0].Name)
	assert.Equal(t, entities.ContactRoleStaff, contacts[0].Role)
	assert.Equal(t, "Internal", contacts[0].Company)
	assert.Equal(t, "Mike Johnson", contacts[1].Name)
}

func TestIdentifyContacts_StaffInheritCompanyName(t *testing.T) {
	extracted := &entities.ExtractedFields{CompanyName: "Acme Corp"}

	contacts := identifyContacts("Supervisor Diana took over the call", extracted)

	require.Len(t, contacts, 1)
	assert.Equal(t, "Diana", contacts[0].Name)
	assert.Equal(t, "Acme Corp", contacts[0].Company)
}

func TestIdentifyContacts_DedupesByName(t *testing.T) {
	extracted := &entities.ExtractedFields{ContactName: "Sarah"}

	contacts := identifyContacts("Agent Sarah: hello\nSupervisor Sarah joined", extracted)

	require.Len(t, contacts, 1)
	// First occurrence wins, so Sarah stays the customer record.
	assert.Equal(t, entities.ContactRoleCustomer, contacts[0].Role)
}

func TestIdentifyContacts_CapsAtFive(t *testing.T) {
	transcript := "Agent Alice: hi\nAgent Bob: hi\nAgent Carol: hi\nAgent Dave: hi\nAgent Erin: hi\nAgent Frank: hi"

	contacts := identifyContacts(transcript, &entities.ExtractedFields{})

	assert.Len(t, contacts, maxContacts)
}
