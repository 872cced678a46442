package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrompt_ConfiguredPath(t *testing.T) {
	svc := NewPromptService(DefaultPromptTable())

	prompt := svc.ResolvePrompt("kazakhstan", "b2c", "workplace_advisor")
	assert.Equal(t, DefaultPromptTable()["kazakhstan"]["b2c"]["workplace_advisor"], prompt)
	assert.Contains(t, prompt, "Labor Code")
}

func TestResolvePrompt_AllConfiguredPathsResolve(t *testing.T) {
	table := DefaultPromptTable()
	svc := NewPromptService(table)

	for country, sectors := range table {
		for sector, subSectors := range sectors {
			for subSector, want := range subSectors {
				got := svc.ResolvePrompt(country, sector, subSector)
				assert.Equal(t, want, got, "%s/%s/%s", country, sector, subSector)
			}
		}
	}
}

func TestResolvePrompt_MissingCountry(t *testing.T) {
	svc := NewPromptService(DefaultPromptTable())

	assert.Equal(t, FallbackPrompt, svc.ResolvePrompt("kyrgyzstan", "b2c", "workplace_advisor"))
}

func TestResolvePrompt_MissingSector(t *testing.T) {
	svc := NewPromptService(DefaultPromptTable())

	assert.Equal(t, FallbackPrompt, svc.ResolvePrompt("kazakhstan", "b2x", "workplace_advisor"))
}

func TestResolvePrompt_MissingSubSector(t *testing.T) {
	svc := NewPromptService(DefaultPromptTable())

	// family_law lives under b2c, not b2b.
	assert.Equal(t, FallbackPrompt, svc.ResolvePrompt("kazakhstan", "b2b", "family_law"))
}

func TestResolvePrompt_EmptyKeys(t *testing.T) {
	svc := NewPromptService(DefaultPromptTable())

	assert.Equal(t, FallbackPrompt, svc.ResolvePrompt("", "", ""))
}

func TestResolvePrompt_EmptyTable(t *testing.T) {
	svc := NewPromptService(PromptTable{})

	assert.Equal(t, FallbackPrompt, svc.ResolvePrompt("kazakhstan", "b2c", "workplace_advisor"))
}

func TestDefaultPromptTable_CoversAllAssistants(t *testing.T) {
	table := DefaultPromptTable()

	subSectors := []string{
		"workplace_advisor", "family_law", "consumer_rights",
		"contract_advisor", "corporate_assistant", "ip_guard",
		"public_service_navigator", "regulatory_compliance", "digital_notary",
	}

	var found []string
	for _, sectors := range table["kazakhstan"] {
		for subSector := range sectors {
			found = append(found, subSector)
		}
	}
	assert.ElementsMatch(t, subSectors, found)

	for _, sectors := range table["kazakhstan"] {
		for subSector, prompt := range sectors {
			assert.True(t, strings.HasPrefix(prompt, "You are"), "prompt for %s", subSector)
		}
	}
}
