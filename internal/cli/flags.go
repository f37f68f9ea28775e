package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// categoryValue is a pflag.Value accepting only known category hints.
type categoryValue struct {
	hint domain.CategoryHint
}

var _ pflag.Value = (*categoryValue)(nil)

func (v *categoryValue) String() string { return string(v.hint) }

func (v *categoryValue) Set(s string) error {
	c, ok := domain.ParseCategory(strings.TrimSpace(s))
	if !ok {
		return fmt.Errorf("must be one of %s", strings.Join(categoryNames(), ", "))
	}
	v.hint = c
	return nil
}

func (v *categoryValue) Type() string { return "category" }

// statusValue is a pflag.Value for conversation status filters.
type statusValue struct {
	status *domain.ConversationStatus
}

var _ pflag.Value = (*statusValue)(nil)

func (v *statusValue) String() string {
	if v.status == nil {
		return ""
	}
	return string(*v.status)
}

func (v *statusValue) Set(s string) error {
	if !domain.ValidConversationStatuses[s] {
		return fmt.Errorf("must be active or completed")
	}
	st := domain.ConversationStatus(s)
	v.status = &st
	return nil
}

func (v *statusValue) Type() string { return "status" }

func categoryNames() []string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return names
}

func addCategoryFlag(cmd *cobra.Command, v *categoryValue) {
	cmd.Flags().Var(v, "category", "Symptom category ("+strings.Join(categoryNames(), "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return categoryNames(), cobra.ShellCompDirectiveNoFileComp
	})
}
