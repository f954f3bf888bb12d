package safe

import (
	"fmt"
	"strings"

	"github.com/gabapcia/safedesk/internal/pkg/validator"
	"github.com/gabapcia/safedesk/internal/wizard"
)

// Load wizard page labels.
const (
	PageNameAndAddress = "Name and address"
	PageOwners         = "Owners"
	PageReview         = "Review"
)

// LoadWizardID identifies the load wizard in logs.
const LoadWizardID = "load-safe-form"

// nameAndAddressRules are the validation rules of the first page.
var nameAndAddressRules = map[string]string{
	FieldName:    "required",
	FieldAddress: "required,eth_addr",
}

func (s *service) NewLoadWizard(opts ...wizard.Option) (*wizard.Stepper, error) {
	pages := []wizard.Page{
		{
			Label:                   PageNameAndAddress,
			Validate:                validateNameAndAddress,
			PrepareNextInitialProps: s.FetchOwners,
			Render:                  renderNameAndAddress,
		},
		{
			Label:    PageOwners,
			Validate: validateOwners,
			Render:   renderOwners,
		},
		{
			Label:  PageReview,
			Render: renderReview,
		},
	}

	defaults := []wizard.Option{
		wizard.WithTestID(LoadWizardID),
		wizard.WithButtonLabels("Next", "Review", "Load"),
		wizard.WithOnSubmit(s.Load),
	}

	return wizard.NewStepper(pages, append(defaults, opts...)...)
}

func validateNameAndAddress(values wizard.Values) wizard.FieldErrors {
	return wizard.FieldErrors(validator.ValidateValues(values, nameAndAddressRules))
}

func validateOwners(values wizard.Values) wizard.FieldErrors {
	rules := make(map[string]string)
	for i := range ownerCount(values) {
		rules[OwnerNameField(i)] = "required"
	}

	return wizard.FieldErrors(validator.ValidateValues(values, rules))
}

func writeControls(b *strings.Builder, controls wizard.Controls) {
	fmt.Fprintf(b, "\n[ %s ]  [ %s ]", controls.BackLabel(), controls.SubmitLabel())
	if controls.Disabled {
		b.WriteString("  (busy)")
	}
	b.WriteString("\n")
}

func renderNameAndAddress(controls wizard.Controls, values wizard.Values, _ wizard.UpdateFunc) string {
	var b strings.Builder
	b.WriteString("Add an existing Safe by its name and address.\n\n")
	fmt.Fprintf(&b, "  %s: %s\n", FieldName, stringValue(values, FieldName))
	fmt.Fprintf(&b, "  %s: %s\n", FieldAddress, stringValue(values, FieldAddress))
	writeControls(&b, controls)
	return b.String()
}

func renderOwners(controls wizard.Controls, values wizard.Values, _ wizard.UpdateFunc) string {
	n := ownerCount(values)

	var b strings.Builder
	fmt.Fprintf(&b, "This Safe has %d owners. Optional: Provide a name for each owner.\n\n", n)
	for i := range n {
		fmt.Fprintf(&b, "  %s: %-20s %s\n", OwnerNameField(i), stringValue(values, OwnerNameField(i)), stringValue(values, OwnerAddressField(i)))
	}
	writeControls(&b, controls)
	return b.String()
}

func renderReview(controls wizard.Controls, values wizard.Values, _ wizard.UpdateFunc) string {
	info := infoFromValues(values)

	var b strings.Builder
	fmt.Fprintf(&b, "Name of the Safe:  %s\n", info.Name)
	fmt.Fprintf(&b, "Safe address:      %s\n", info.Address)
	fmt.Fprintf(&b, "Any transaction requires the confirmation of: %d out of %d owners\n\n", info.Threshold, len(info.Owners))
	fmt.Fprintf(&b, "%d Safe owners\n", len(info.Owners))
	for _, owner := range info.Owners {
		fmt.Fprintf(&b, "  %-20s %s\n", owner.Name, owner.Address)
	}
	writeControls(&b, controls)
	return b.String()
}
