package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	currencyFlag := flag.String("currency", "", "currency symbol override")
	principalFlag := flag.String("principal", "", "one-shot principal amount (e.g. 200,000)")
	termFlag := flag.String("term", "", "one-shot mortgage term in years")
	rateFlag := flag.String("rate", "", "one-shot annual interest rate percentage")
	typeFlag := flag.String("type", "repayment", "one-shot mortgage type: repayment, interest-only")
	flag.Parse()

	// With one-shot flags set the config file is optional; without them it is
	// required.
	oneShot := *principalFlag != "" || *termFlag != "" || *rateFlag != ""

	conf := &config.Configuration{Currency: constants.DefaultCurrencySymbol}
	if loaded, err := config.LoadConfiguration(*configLocation); err == nil {
		conf = loaded
	} else if !oneShot {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := conf.Logging.BuildLogger(*logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine currency symbol (CLI override takes precedence over config)
	currency := conf.Currency
	if *currencyFlag != "" {
		currency = *currencyFlag
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if oneShot {
		// One-shot flags run through the same raw-form parsing as the web UI,
		// so grouped amounts like 200,000 work on the command line too.
		input, fieldErrors := validation.ParseForm(validation.FormInput{
			Principal:          *principalFlag,
			TermYears:          *termFlag,
			AnnualInterestRate: *rateFlag,
			MortgageType:       *typeFlag,
		})
		if len(fieldErrors) > 0 {
			for _, fieldError := range fieldErrors {
				logger.Error("invalid mortgage input",
					zap.String("op", "main"),
					zap.String("field", fieldError.Field),
					zap.String("message", fieldError.Message),
				)
			}
			logger.Fatal("aborting due to invalid input",
				zap.String("op", "main"),
				zap.Int("fieldErrors", len(fieldErrors)),
			)
		}

		result := mortgage.Calculate(input)
		conf.Mortgages = []config.Mortgage{{
			Name:               "Mortgage",
			Principal:          input.Principal,
			TermYears:          input.TermYears,
			AnnualInterestRate: input.AnnualRatePercent,
			Type:               string(input.Type),
			ParsedType:         input.Type,
			Result:             &result,
		}}
	} else {
		// Validate configuration and display any warnings
		warnings := conf.ValidateConfiguration()
		for _, warning := range warnings {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		// Compute the payment figures for all configured mortgages.
		err = conf.ProcessMortgages(logger)
		if err != nil {
			logger.Fatal("failed to process mortgages",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, currency, conf.Mortgages)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, conf.Mortgages)
	}

}
