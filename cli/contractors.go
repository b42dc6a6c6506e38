// ABOUTME: Contractor CLI commands
// ABOUTME: Manage the contractor roster and reviews from the terminal
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

// AddContractorCommand adds a contractor to the roster.
func AddContractorCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-contractor", flag.ExitOnError)
	name := fs.String("name", "", "Contractor name (required)")
	company := fs.String("company", "", "Company name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	specs := fs.String("specializations", "", "Comma-separated trade specializations")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	c := &models.Contractor{
		Name:    *name,
		Company: *company,
		Email:   *email,
		Phone:   *phone,
	}
	if *specs != "" {
		for _, spec := range strings.Split(*specs, ",") {
			if spec = strings.TrimSpace(spec); spec != "" {
				c.Specializations = append(c.Specializations, spec)
			}
		}
	}
	if !db.CreateContractor(s, c) {
		return fmt.Errorf("failed to create contractor")
	}

	fmt.Printf("✓ Contractor created: %s (ID: %s)\n", c.Name, c.ID)
	return nil
}

// ListContractorsCommand lists contractors, optionally by specialization.
func ListContractorsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-contractors", flag.ExitOnError)
	spec := fs.String("specialization", "", "Filter by trade specialization")
	_ = fs.Parse(args)

	var contractors []*models.Contractor
	if *spec != "" {
		contractors = db.ContractorsBySpecialization(s, *spec)
	} else {
		contractors = db.AllContractors(s)
	}

	if len(contractors) == 0 {
		fmt.Println("No contractors found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCOMPANY\tSPECIALIZATIONS\tRATING\tREVIEWS\tID")
	_, _ = fmt.Fprintln(w, "----\t-------\t---------------\t------\t-------\t--")

	for _, c := range contractors {
		company := c.Company
		if company == "" {
			company = "-"
		}
		specs := strings.Join(c.Specializations, ", ")
		if specs == "" {
			specs = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\t%s\n",
			c.Name, company, specs, c.Rating.Overall(), c.ReviewCount, shortID(c.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d contractor(s)\n", len(contractors))
	return nil
}

// ReviewContractorCommand records a review with the five sub-scores.
func ReviewContractorCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("review-contractor", flag.ExitOnError)
	contractor := fs.String("contractor", "", "Contractor ID (required)")
	project := fs.String("project", "", "Project the review covers")
	quality := fs.Float64("quality", 0, "Work quality, 0-5")
	reliability := fs.Float64("reliability", 0, "Reliability, 0-5")
	communication := fs.Float64("communication", 0, "Communication, 0-5")
	cost := fs.Float64("cost-accuracy", 0, "Cost accuracy, 0-5")
	safety := fs.Float64("safety", 0, "Site safety, 0-5")
	comment := fs.String("comment", "", "Free-form comment")
	_ = fs.Parse(args)

	if *contractor == "" {
		return fmt.Errorf("--contractor is required")
	}
	for _, score := range []float64{*quality, *reliability, *communication, *cost, *safety} {
		if score < 0 || score > 5 {
			return fmt.Errorf("scores must be between 0 and 5")
		}
	}
	if _, ok := db.GetContractor(s, *contractor); !ok {
		return fmt.Errorf("contractor not found")
	}

	ok := db.AddContractorReview(s, &models.ContractorReview{
		ContractorID: *contractor,
		ProjectID:    *project,
		Comment:      *comment,
		Scores: models.Rating{
			Quality:       *quality,
			Reliability:   *reliability,
			Communication: *communication,
			CostAccuracy:  *cost,
			Safety:        *safety,
		},
	})
	if !ok {
		return fmt.Errorf("failed to save review")
	}

	c, _ := db.GetContractor(s, *contractor)
	fmt.Printf("✓ Review saved. %s now rates %.1f over %d review(s)\n",
		c.Name, c.Rating.Overall(), c.ReviewCount)
	return nil
}
