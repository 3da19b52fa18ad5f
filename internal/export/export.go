package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

// Layout picks the human-readable rendering for FormatTable.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

// maxCardSkills is how many skills a card shows before collapsing to "+N".
const maxCardSkills = 4

type WriteOptions struct {
	ColorEnabled bool
	Layout       Layout
	IsBookmarked func(id int) bool
}

func (o WriteOptions) bookmarked(id int) bool {
	return o.IsBookmarked != nil && o.IsBookmarked(id)
}

func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs, opts)
	case FormatCSV:
		return writeCSV(w, jobs, ',', opts)
	case FormatTSV:
		return writeCSV(w, jobs, '\t', opts)
	case FormatMarkdown:
		return writeMarkdown(w, jobs, opts)
	default:
		if opts.Layout == LayoutList {
			return writeTable(w, jobs, opts)
		}
		return writeCards(w, jobs, opts)
	}
}

// ParseFormat maps a flag value onto a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

type jsonJob struct {
	models.Job
	CompanyName string `json:"companyName"`
	Bookmarked  bool   `json:"bookmarked"`
}

func writeJSON(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	out := make([]jsonJob, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jsonJob{Job: job, CompanyName: job.CompanyName(), Bookmarked: opts.bookmarked(job.ID)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, jobs []models.Job, delim rune, opts WriteOptions) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(csvRow(job, opts)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	if len(jobs) == 0 {
		return writeEmpty(w)
	}
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	for _, job := range jobs {
		fmt.Fprintln(tw, strings.Join(tableRow(job, opts), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !opts.ColorEnabled {
		_, err := w.Write(buf.Bytes())
		return err
	}

	// Color is applied after alignment; tabwriter would count escape bytes
	// as cell width.
	output := colorOutput(w)
	lines := strings.SplitAfter(buf.String(), "\n")
	for i, line := range lines {
		if i >= 1 && i <= len(jobs) {
			line = colorizeSalary(line, FormatCurrency(jobs[i-1].Salary), output)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// colorOutput renders with the basic ANSI palette. Callers decide whether
// color is wanted through WriteOptions.ColorEnabled.
func colorOutput(w io.Writer) *termenv.Output {
	return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
}

func colorizeSalary(line, salary string, output *termenv.Output) string {
	idx := strings.LastIndex(line, salary)
	if idx < 0 {
		return line
	}
	colored := output.String(salary).Foreground(output.Color("2")).String()
	return line[:idx] + colored + line[idx+len(salary):]
}

func writeCards(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	if len(jobs) == 0 {
		return writeEmpty(w)
	}
	output := colorOutput(w)
	for i, job := range jobs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := fmt.Sprintf("%s %s", bookmarkMark(opts.bookmarked(job.ID)), safe(job.Title))
		if opts.ColorEnabled {
			title = output.String(title).Bold().String()
		}
		salary := FormatCurrency(job.Salary)
		if opts.ColorEnabled {
			salary = output.String(salary).Foreground(output.Color("2")).String()
		}
		lines := []string{
			fmt.Sprintf("%s  #%d", title, job.ID),
			fmt.Sprintf("  %s", orDash(job.CompanyName())),
			fmt.Sprintf("  %s | %s | %s | %s", orDash(job.Location), orDash(job.JobType), orDash(job.ExperienceLevel), salary),
		}
		if skills := CardSkills(job.Skills); skills != "" {
			lines = append(lines, "  "+skills)
		}
		if posted := job.PostedDate.String(); posted != "" {
			lines = append(lines, "  Posted "+posted)
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMarkdown(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	if len(jobs) == 0 {
		return writeEmpty(w)
	}
	for _, job := range jobs {
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(job.Title), orDash(job.CompanyName())),
			fmt.Sprintf("  Location: %s", safe(job.Location)),
			fmt.Sprintf("  Type: %s", safe(job.JobType)),
			fmt.Sprintf("  Level: %s", safe(job.ExperienceLevel)),
			fmt.Sprintf("  Salary: %s", FormatCurrency(job.Salary)),
		}
		if len(job.Skills) > 0 {
			lines = append(lines, fmt.Sprintf("  Skills: %s", strings.Join(job.Skills, ", ")))
		}
		if posted := job.PostedDate.String(); posted != "" {
			lines = append(lines, fmt.Sprintf("  Posted: %s", posted))
		}
		if opts.bookmarked(job.ID) {
			lines = append(lines, "  Bookmarked: yes")
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEmpty(w io.Writer) error {
	_, err := fmt.Fprintln(w, "No jobs found. Try adjusting your search or filters.")
	return err
}

func csvHeader() []string {
	return []string{
		"id",
		"title",
		"company",
		"location",
		"job_type",
		"experience_level",
		"salary",
		"skills",
		"posted_date",
		"bookmarked",
	}
}

func csvRow(job models.Job, opts WriteOptions) []string {
	return []string{
		strconv.Itoa(job.ID),
		job.Title,
		job.CompanyName(),
		job.Location,
		job.JobType,
		job.ExperienceLevel,
		strconv.FormatFloat(job.Salary, 'f', -1, 64),
		strings.Join(job.Skills, ";"),
		job.PostedDate.String(),
		strconv.FormatBool(opts.bookmarked(job.ID)),
	}
}

func tableHeader() []string {
	return []string{
		"",
		"id",
		"title",
		"company",
		"type",
		"level",
		"salary",
		"posted",
	}
}

func tableRow(job models.Job, opts WriteOptions) []string {
	return []string{
		bookmarkMark(opts.bookmarked(job.ID)),
		strconv.Itoa(job.ID),
		safe(job.Title),
		orDash(job.CompanyName()),
		safe(job.JobType),
		safe(job.ExperienceLevel),
		FormatCurrency(job.Salary),
		job.PostedDate.String(),
	}
}

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a salary as whole US dollars ("$120,000").
func FormatCurrency(amount float64) string {
	return printer.Sprintf("$%d", int64(amount+0.5))
}

// CardSkills lists at most four skills and summarizes the rest as "+N".
func CardSkills(skills []string) string {
	if len(skills) <= maxCardSkills {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(skills[:maxCardSkills], ", "), len(skills)-maxCardSkills)
}

func bookmarkMark(bookmarked bool) string {
	if bookmarked {
		return "★"
	}
	return "☆"
}

func orDash(value string) string {
	if value = safe(value); value == "" {
		return "-"
	}
	return value
}

func safe(value string) string {
	return strings.TrimSpace(value)
}
