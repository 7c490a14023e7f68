// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/strategy/pkg/guide"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "strategy guide-file",
		Short: "Score a rock paper scissors strategy guide",
		Long: heredoc.Doc(`strategy reads the given strategy guide and prints the
			total score that following it would earn.

			Every line of the guide is a round of the form "<opponent> <result>",
			where the opponent throws A (rock), B (paper) or C (scissors) and the
			round has to end in X (a loss), Y (a draw) or Z (a win). A round is
			worth the value of your shape (1 for rock, 2 for paper, 3 for scissors)
			plus that of its result (0 for a loss, 3 for a draw, 6 for a win).`),
		Args: cobra.ExactArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fmt.Fprintf(cmd.OutOrStdout(), "Loading strategy from: %s\n", path)

			strategy, err := guide.Open(path)
			if err != nil {
				return err
			}
			defer strategy.Close()

			total, err := strategy.Total()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total score is: %d\n", total)
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Strategy's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	return root
}
