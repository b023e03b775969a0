package mwbotctl

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/mwbotctl/internal/version"
	"github.com/arthur-debert/mwbotctl/pkg/commands"
	"github.com/arthur-debert/mwbotctl/pkg/config"
	"github.com/arthur-debert/mwbotctl/pkg/ui/display"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Example: MsgSetupExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			flags := changedFlags(cmd,
				config.KeyUsername, config.KeyBotPassword, config.KeyOAuth2Token,
				config.KeyAPIURL, config.KeyRESTURL, config.KeyTemplate, config.KeyEnvFile)

			log.Info().Bool("dry_run", dryRun).Int("flags", len(flags)).Msg("Setting up bot configuration")

			result, err := commands.Setup(cmd.Context(), commands.SetupOptions{
				Flags:           flags,
				EnvFileRequired: cmd.Flags().Changed(config.KeyEnvFile),
				DryRun:          dryRun,
			})
			if err != nil {
				if result != nil && result.Written {
					printStatus(cmd.ErrOrStderr(), pterm.Warning, MsgSetupPartial, result.Path)
				}
				return err
			}

			if dryRun {
				renderer, err := newRenderer(cmd)
				if err != nil {
					return err
				}
				report := &display.Report{Command: "setup", Title: fmt.Sprintf(MsgSetupDryRun, result.Path), DryRun: true}
				report.AddPath("template", result.TemplatePath).
					AddPath("destination", result.Path).
					Add("placeholders", strings.Join(result.Placeholders, ", ")).
					Add("state", result.State.String())
				return renderer.RenderResult(report)
			}

			printStatus(cmd.ErrOrStderr(), pterm.Success, MsgSetupSuccess, result.Path)
			if !result.Hardened {
				printStatus(cmd.ErrOrStderr(), pterm.Warning, "%s", MsgNoOwnerOnlyModes)
			}
			return nil
		},
	}

	cmd.Flags().String(config.KeyUsername, "", MsgFlagUsername)
	cmd.Flags().String(config.KeyBotPassword, "", MsgFlagBotPassword)
	cmd.Flags().String(config.KeyOAuth2Token, "", MsgFlagOAuth2Token)
	cmd.Flags().String(config.KeyAPIURL, "", MsgFlagAPIURL)
	cmd.Flags().String(config.KeyRESTURL, "", MsgFlagRESTURL)
	cmd.Flags().StringP(config.KeyTemplate, "t", "", MsgFlagTemplate)
	cmd.Flags().String(config.KeyEnvFile, "", MsgFlagEnvFile)
	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)

	cmd.MarkFlagsMutuallyExclusive(config.KeyBotPassword, config.KeyOAuth2Token)
	_ = cmd.MarkFlagFilename(config.KeyTemplate, "toml")
	_ = cmd.MarkFlagFilename(config.KeyEnvFile)

	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			result, err := commands.Run(cmd.Context(), commands.RunOptions{
				Flags:      changedFlags(cmd, config.KeyPage, config.KeyTimeout),
				ConfigPath: configPath,
				UserAgent:  version.UserAgent(),
			})
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			page := result.Page
			report := &display.Report{Command: "run", Title: page.Summary()}
			report.Add("bot", result.Username).
				Add("url", result.URL).
				AddPath("config", result.ConfigPath).
				Add("sections", fmt.Sprint(len(page.Sections())))
			for _, h := range page.Headings() {
				report.Note(h)
			}
			return renderer.RenderResult(report)
		},
	}

	cmd.Flags().String(config.KeyPage, "", MsgFlagPage)
	cmd.Flags().String(config.KeyTimeout, "", MsgFlagTimeout)
	cmd.Flags().String("config", "", MsgFlagConfig)
	_ = cmd.MarkFlagFilename("config", "toml")

	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			result, err := commands.Check(commands.CheckOptions{ConfigPath: configPath})
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			report := &display.Report{Command: "check", Title: MsgCheckOK}
			report.AddPath("path", result.Path).
				Add("mode", result.Mode.String()).
				Add("username", result.Username).
				Add("auth", result.Method).
				Add("api_url", result.APIURL).
				Add("rest_url", result.RESTURL)
			if !result.OwnerOnly {
				report.Note(MsgNoOwnerOnlyModes)
			}
			return renderer.RenderResult(report)
		},
	}

	cmd.Flags().String("config", "", MsgFlagConfig)
	_ = cmd.MarkFlagFilename("config", "toml")

	return cmd
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "docs",
		Short:   MsgDocsShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMarkdown(MsgTemplateGuide)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
