// Package report holds the read-side value types of kitchen reporting: the
// inclusive calendar DateRange a report covers, the Report itself, and the
// export Format it can be rendered to.
package report
