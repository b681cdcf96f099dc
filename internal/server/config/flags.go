package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/certverify/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-v float    VERIFIED verdict score threshold
//	-f float    FLAGGED verdict score threshold
//	-x float    minimum extraction confidence for the exact lookup path
//	-k int      fuzzy name-lookup candidate bound (top-K)
//	-w int      alert history window, hours
//	-j int      rejection count per issuer/name pair that trips an alert
//	-l string   comma-separated Tesseract language codes (e.g., "eng,hin")
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The window flag is accepted as an integer in hours and then converted
//     to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-v", "-f", "-x", "-k", "-w", "-j", "-l", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	fs.Float64Var(&config.VerifiedThreshold, "v", config.VerifiedThreshold, "VERIFIED score threshold")
	fs.Float64Var(&config.FlaggedThreshold, "f", config.FlaggedThreshold, "FLAGGED score threshold")
	fs.Float64Var(&config.ExactConfidence, "x", config.ExactConfidence, "exact lookup confidence threshold")
	fs.IntVar(&config.TopK, "k", config.TopK, "fuzzy lookup candidate bound")

	alertWindowHours := fs.Int("w", int(config.AlertWindow.Hours()), "alert window (in hours)")
	fs.IntVar(&config.AlertRejectionLimit, "j", config.AlertRejectionLimit, "rejection limit per issuer/name pair")

	languages := fs.String("l", strings.Join(config.OCRLanguages, ","), "OCR languages, comma separated")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AlertWindow = time.Duration(*alertWindowHours) * time.Hour
	config.OCRLanguages = splitLanguages(*languages)
}

func splitLanguages(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
