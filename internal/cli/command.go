package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/palabra/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palabra [vocabulary-file]",
		Short: "Spanish Vocabulary Drill",
		Long: `palabra drills Spanish vocabulary in the terminal.

Each word is spoken aloud via TTS, illustrated with an image from web
search and accompanied by AI-generated example sentences. The English
translation reveals after a short delay, and a multiple-choice exam
fires every few words.

Examples:
  palabra words.csv               # Drill the given vocabulary file
  palabra --anki words.csv        # Export the vocabulary as an Anki deck
  palabra --list-models           # List OpenAI models for the current key`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.palabra.yaml)")

	// Session flags
	cmd.Flags().IntVar(&flags.TranslationDelay, "translation-delay", flags.TranslationDelay, "Milliseconds before the translation reveals")
	cmd.Flags().IntVar(&flags.ExamInterval, "exam-interval", flags.ExamInterval, "Words between exam rounds")
	cmd.Flags().IntVar(&flags.ExamWordCount, "exam-words", flags.ExamWordCount, "Words per exam round")
	cmd.Flags().IntVar(&flags.ExamChoices, "exam-choices", flags.ExamChoices, "Multiple-choice options per question")
	cmd.Flags().IntVar(&flags.SentenceCount, "sentences", flags.SentenceCount, "Example sentences per word")
	cmd.Flags().IntVar(&flags.ImageTimeout, "image-timeout", flags.ImageTimeout, "Image search timeout in seconds")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip speech synthesis")
	cmd.Flags().BoolVar(&flags.SkipImages, "skip-images", false, "Skip image search")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the export directory and exit")

	// Anki export flags
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Export the vocabulary as an Anki deck and exit (APKG format by default)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVarP(&flags.ExportDir, "export-dir", "o", flags.ExportDir, "Directory for deck exports")

	// Audio flags
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "TTS provider: openai or espeak")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (wav or mp3)")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", "", "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse (default: random)")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model (e.g., 'speak slowly with a Castilian accent')")
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "espeak-ng voice (e.g. es, es-419)")
	cmd.Flags().IntVar(&flags.ESpeakSpeed, "espeak-speed", flags.ESpeakSpeed, "espeak-ng speed in words per minute")

	// Sentence generation flags
	cmd.Flags().StringVar(&flags.SentenceProvider, "sentence-provider", flags.SentenceProvider, "Sentence generator: openai or gemini")
	cmd.Flags().StringVar(&flags.SentenceModel, "sentence-model", flags.SentenceModel, "Chat model for example sentences")
	cmd.Flags().StringVar(&flags.OpenAIBaseURL, "openai-base-url", "", "Override the OpenAI API base URL (e.g. a local Ollama endpoint)")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for example sentences")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("session.translation_delay", cmd.Flags().Lookup("translation-delay"))
	viper.BindPFlag("session.exam_interval", cmd.Flags().Lookup("exam-interval"))
	viper.BindPFlag("session.exam_words", cmd.Flags().Lookup("exam-words"))
	viper.BindPFlag("session.exam_choices", cmd.Flags().Lookup("exam-choices"))
	viper.BindPFlag("session.sentences", cmd.Flags().Lookup("sentences"))
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-provider"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
	viper.BindPFlag("audio.espeak_voice", cmd.Flags().Lookup("espeak-voice"))
	viper.BindPFlag("audio.espeak_speed", cmd.Flags().Lookup("espeak-speed"))
	viper.BindPFlag("sentences.provider", cmd.Flags().Lookup("sentence-provider"))
	viper.BindPFlag("sentences.model", cmd.Flags().Lookup("sentence-model"))
	viper.BindPFlag("sentences.openai_base_url", cmd.Flags().Lookup("openai-base-url"))
	viper.BindPFlag("sentences.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("image.timeout", cmd.Flags().Lookup("image-timeout"))
	viper.BindPFlag("export.directory", cmd.Flags().Lookup("export-dir"))
	viper.BindPFlag("export.deck_name", cmd.Flags().Lookup("deck-name"))
}

// InitConfig initializes viper configuration. A .env file in the
// working directory is loaded first so its variables are visible to
// viper's env lookup.
func InitConfig(cfgFile string) {
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".palabra")
	}

	viper.SetEnvPrefix("PALABRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("audio.openai_key")
}

// GetPixabayKey retrieves the Pixabay API key from environment or config
func GetPixabayKey() string {
	if key := os.Getenv("PIXABAY_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("image.pixabay_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("sentences.gemini_key")
}
