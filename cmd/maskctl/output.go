package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	criticalColor = color.New(color.FgRed, color.Bold)
	moderateColor = color.New(color.FgYellow)
	successColor  = color.New(color.FgGreen)
)

func printRecommendation(w io.Writer, rec *entities.Recommendation) {
	fmt.Fprintln(w)
	headerColor.Fprintln(w, "CPAP Mask Recommendation")

	if len(rec.SafetyFlags) > 0 {
		fmt.Fprintln(w)
		for _, flag := range rec.SafetyFlags {
			printSafetyFlag(w, flag)
		}
	}

	fmt.Fprintln(w)
	successColor.Fprintf(w, "Mask type: %s", rec.MaskTypeLabel)
	fmt.Fprintf(w, "  (success rate %s)\n", rec.SuccessRate)
	if len(rec.SpecificModels) > 0 {
		fmt.Fprintf(w, "Models: %s\n", strings.Join(rec.SpecificModels, ", "))
	}
	if rec.AlternativeCategory != "" {
		fmt.Fprintf(w, "Alternative: %s", rec.AlternativeCategory.Label())
		if len(rec.AlternativeModels) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(rec.AlternativeModels, ", "))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	headerColor.Fprintln(w, "Attachment")
	fmt.Fprintf(w, "  %s (score %d): %s\n", rec.Attachment.Type, rec.Attachment.Score, rec.Attachment.Justification)
	for _, alt := range rec.AttachmentAlternatives {
		fmt.Fprintf(w, "  alt: %s (score %d)\n", alt.Type, alt.Score)
	}

	if len(rec.Accessories) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "Accessories")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, acc := range rec.Accessories {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", acc.Priority, acc.Item, acc.Justification)
		}
		tw.Flush()
	}

	if len(rec.MaskExamples) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "Example masks")
		for _, group := range rec.MaskExamples {
			for _, mask := range group.Masks {
				fmt.Fprintf(w, "  %s %s (score %d)\n", group.Brand, mask.Model, mask.Score)
			}
		}
	}

	if len(rec.Notes) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "Notes")
		for _, note := range rec.Notes {
			fmt.Fprintf(w, "  - %s\n", note)
		}
	}

	counts := rec.FactorInfluence.Counts
	fmt.Fprintf(w, "\nFactors: %d mask type, %d attachment, %d accessories\n", counts.MaskType, counts.Attachment, counts.Accessories)
}

func printSafetyFlag(w io.Writer, flag entities.SafetyFlag) {
	c := moderateColor
	if flag.Severity == entities.SeverityCritical {
		c = criticalColor
	}
	c.Fprintf(w, "[%s] %s", flag.Severity, flag.Message)

	var detail []string
	if flag.Restriction != "" {
		detail = append(detail, "restriction "+flag.Restriction)
	}
	if flag.Requirement != "" {
		detail = append(detail, "requires "+flag.Requirement)
	}
	if len(detail) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(detail, ", "))
	}
	fmt.Fprintln(w)
}

func printCatalog(w io.Writer, entries []entities.CatalogEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BRAND\tMODEL\tCATEGORY\tTUBE-UP\tCUSHION\tBEARD\tSKIN\tMAGNETIC")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Brand, e.Model, e.Category, yesNo(e.TubeUp), e.CushionMaterial,
			yesNo(e.FacialHairCompatible), yesNo(e.SkinFriendly), yesNo(e.MagneticClips))
	}
	tw.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}
