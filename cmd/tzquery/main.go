// Command tzquery answers zone offset and conversion queries against the
// local tzdata installation, using the zoneinfo engine rather than the Go
// standard library's time.LoadLocation.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pganssle/zoneinfo/zoneinfo"
)

var rootVerboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "tzquery",
	Short: "Query IANA time zone offsets and conversions",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(offsetCmd, convertCmd)
}

func configureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var offsetYear, offsetMonth, offsetDay, offsetHour, offsetMinute, offsetSecond int
var offsetFold bool

var offsetCmd = &cobra.Command{
	Use:   "offset <zone key>",
	Short: "Print the UTC offset, DST offset, and abbreviation at a local civil time",
	Args:  cobra.ExactArgs(1),
	Run:   runOffsetCmd,
}

func init() {
	flags := offsetCmd.Flags()
	flags.IntVar(&offsetYear, "year", 0, "year (required)")
	flags.IntVar(&offsetMonth, "month", 1, "month")
	flags.IntVar(&offsetDay, "day", 1, "day")
	flags.IntVar(&offsetHour, "hour", 0, "hour")
	flags.IntVar(&offsetMinute, "minute", 0, "minute")
	flags.IntVar(&offsetSecond, "second", 0, "second")
	flags.BoolVar(&offsetFold, "fold", false, "resolve an ambiguous local time to its second (later) occurrence")
	_ = offsetCmd.MarkFlagRequired("year")
}

func runOffsetCmd(_ *cobra.Command, args []string) {
	configureVerbosity()

	key := args[0]
	z, err := zoneinfo.FromKey(key, nil)
	if err != nil {
		log.Fatalf("resolving %s: %v", key, err)
	}

	utcOffset, dstOffset, abbrev, err := z.OffsetAt(zoneinfo.CivilTime{
		Year: offsetYear, Month: offsetMonth, Day: offsetDay,
		Hour: offsetHour, Minute: offsetMinute, Second: offsetSecond,
		Fold: offsetFold,
	})
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	fmt.Printf("%s: utc_offset=%s dst_offset=%s abbrev=%s\n", key, utcOffset, dstOffset, abbrev)
}

var convertYear, convertMonth, convertDay, convertHour, convertMinute, convertSecond int

var convertCmd = &cobra.Command{
	Use:   "convert <zone key>",
	Short: "Convert a naive UTC civil time to local civil time, reporting the fold bit",
	Args:  cobra.ExactArgs(1),
	Run:   runConvertCmd,
}

func init() {
	flags := convertCmd.Flags()
	flags.IntVar(&convertYear, "year", 0, "year (required)")
	flags.IntVar(&convertMonth, "month", 1, "month")
	flags.IntVar(&convertDay, "day", 1, "day")
	flags.IntVar(&convertHour, "hour", 0, "hour")
	flags.IntVar(&convertMinute, "minute", 0, "minute")
	flags.IntVar(&convertSecond, "second", 0, "second")
	_ = convertCmd.MarkFlagRequired("year")
}

func runConvertCmd(_ *cobra.Command, args []string) {
	configureVerbosity()

	key := args[0]
	z, err := zoneinfo.FromKey(key, nil)
	if err != nil {
		log.Fatalf("resolving %s: %v", key, err)
	}

	local, err := z.FromUTC(zoneinfo.CivilTime{
		Year: convertYear, Month: convertMonth, Day: convertDay,
		Hour: convertHour, Minute: convertMinute, Second: convertSecond,
	})
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	fmt.Printf("%04d-%02d-%02dT%02d:%02d:%02d fold=%v\n",
		local.Year, local.Month, local.Day, local.Hour, local.Minute, local.Second, local.Fold)
}
