package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/application/client/usecases"
	"gymdesk/internal/interfaces/cli/bootstrap"
	"gymdesk/internal/shared/services/markdown"
)

var fixturePath string

// Fixture is one client entry in a seed file.
type Fixture struct {
	FullName   string `yaml:"full_name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Age        int    `yaml:"age"`
	Gender     string `yaml:"gender"`
	Address    string `yaml:"address"`
	Notes      string `yaml:"notes"`
	PlanType   string `yaml:"plan_type"`
	PlanAmount string `yaml:"plan_amount"`
	StartDate  string `yaml:"start_date"`
}

type fixtureFile struct {
	Clients []Fixture `yaml:"clients"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load client fixtures from a YAML file",
		RunE:  run,
	}
	cmd.Flags().StringVarP(&fixturePath, "file", "f", "", "YAML fixture file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fixtures, err := ParseFixtures(f)
	if err != nil {
		return err
	}

	env, err := bootstrap.Open()
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewCreateClientUseCase(env.ClientRepo, nil, markdown.NewNotesRenderer(), env.Clock, env.Logger)
	created, err := Load(cmd.Context(), uc, fixtures)
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d clients\n", created, len(fixtures))
	return err
}

// ParseFixtures decodes a seed file, rejecting unknown keys.
func ParseFixtures(r io.Reader) ([]Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fixtureFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return file.Clients, nil
}

// ToRequest converts a fixture into a create request.
func (f Fixture) ToRequest() (dto.ClientRequest, error) {
	amount := decimal.Zero
	if f.PlanAmount != "" {
		var err error
		amount, err = decimal.NewFromString(f.PlanAmount)
		if err != nil {
			return dto.ClientRequest{}, fmt.Errorf("invalid plan_amount %q for %s: %w", f.PlanAmount, f.Email, err)
		}
	}
	return dto.ClientRequest{
		FullName:   f.FullName,
		Email:      f.Email,
		Phone:      f.Phone,
		Age:        f.Age,
		Gender:     f.Gender,
		Address:    f.Address,
		Notes:      f.Notes,
		PlanType:   f.PlanType,
		PlanAmount: amount,
		StartDate:  f.StartDate,
	}, nil
}

// Load creates every fixture through the create use case and stops at the
// first failure. It returns how many clients were created.
func Load(ctx context.Context, uc usecases.CreateClientExecutor, fixtures []Fixture) (int, error) {
	created := 0
	for i, fx := range fixtures {
		req, err := fx.ToRequest()
		if err != nil {
			return created, err
		}
		if _, err := uc.Execute(ctx, req); err != nil {
			return created, fmt.Errorf("fixture %d (%s): %w", i+1, fx.Email, err)
		}
		created++
	}
	return created, nil
}
