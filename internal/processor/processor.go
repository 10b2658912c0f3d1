package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/palabra/internal/anki"
	"codeberg.org/snonux/palabra/internal/audio"
	"codeberg.org/snonux/palabra/internal/cli"
	"codeberg.org/snonux/palabra/internal/image"
	"codeberg.org/snonux/palabra/internal/sentences"
	"codeberg.org/snonux/palabra/internal/session"
	"codeberg.org/snonux/palabra/internal/term"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// Processor builds the session collaborators from the parsed flags
type Processor struct {
	flags  *cli.Flags
	logger *zap.Logger
}

// NewProcessor creates a processor for the given flags
func NewProcessor(flags *cli.Flags, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{flags: resolveConfig(flags), logger: logger}
}

// resolveConfig overlays config-file and environment values from viper
// onto flags still at their defaults, so a .palabra.yaml or PALABRA_*
// setting takes effect without a command-line flag. An explicitly set
// flag wins over the config file.
func resolveConfig(flags *cli.Flags) *cli.Flags {
	def := cli.NewFlags()
	f := *flags

	overlayInt(&f.TranslationDelay, def.TranslationDelay, "session.translation_delay")
	overlayInt(&f.ExamInterval, def.ExamInterval, "session.exam_interval")
	overlayInt(&f.ExamWordCount, def.ExamWordCount, "session.exam_words")
	overlayInt(&f.ExamChoices, def.ExamChoices, "session.exam_choices")
	overlayInt(&f.SentenceCount, def.SentenceCount, "session.sentences")
	overlayInt(&f.ImageTimeout, def.ImageTimeout, "image.timeout")

	overlayString(&f.AudioProvider, def.AudioProvider, "audio.provider")
	overlayString(&f.AudioFormat, def.AudioFormat, "audio.format")
	overlayString(&f.OpenAIModel, def.OpenAIModel, "audio.openai_model")
	overlayString(&f.OpenAIVoice, def.OpenAIVoice, "audio.openai_voice")
	overlayFloat(&f.OpenAISpeed, def.OpenAISpeed, "audio.openai_speed")
	overlayString(&f.OpenAIInstruction, def.OpenAIInstruction, "audio.openai_instruction")
	overlayString(&f.ESpeakVoice, def.ESpeakVoice, "audio.espeak_voice")
	overlayInt(&f.ESpeakSpeed, def.ESpeakSpeed, "audio.espeak_speed")

	overlayString(&f.SentenceProvider, def.SentenceProvider, "sentences.provider")
	overlayString(&f.SentenceModel, def.SentenceModel, "sentences.model")
	overlayString(&f.OpenAIBaseURL, def.OpenAIBaseURL, "sentences.openai_base_url")
	overlayString(&f.GeminiModel, def.GeminiModel, "sentences.gemini_model")

	overlayString(&f.ExportDir, def.ExportDir, "export.directory")
	overlayString(&f.DeckName, def.DeckName, "export.deck_name")

	return &f
}

func overlayInt(dst *int, def int, key string) {
	if *dst == def && viper.IsSet(key) {
		*dst = viper.GetInt(key)
	}
}

func overlayString(dst *string, def string, key string) {
	if *dst == def && viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func overlayFloat(dst *float64, def float64, key string) {
	if *dst == def && viper.IsSet(key) {
		*dst = viper.GetFloat64(key)
	}
}

// cacheSettings reads the synthesis cache configuration. The cache has
// no command-line flags, it is enabled through audio.enable_cache in
// the config file or PALABRA_AUDIO_ENABLE_CACHE.
func cacheSettings() (bool, string) {
	enable := viper.GetBool("audio.enable_cache")
	dir := viper.GetString("audio.cache_dir")
	if dir == "" {
		if cacheHome, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(cacheHome, "palabra", "audio")
		}
	}
	return enable, dir
}

// RunSession starts the interactive drill: it builds the collaborators,
// loads the vocabulary file when given, and blocks until the user
// quits.
func (p *Processor) RunSession(vocabFile string) error {
	disp := session.NewDispatcher()

	speaker, err := p.buildSpeaker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: speech disabled: %v\n", err)
		p.logger.Warn("speech disabled", zap.Error(err))
	}
	if speaker != nil {
		defer speaker.Close()
	}

	fetcher := p.buildFetcher()
	if fetcher == nil && !p.flags.SkipImages {
		fmt.Fprintln(os.Stderr, "Warning: images disabled: PIXABAY_API_KEY not set")
	}

	generator, caps := p.buildGenerator()

	view, err := term.NewView(os.Stdout)
	if err != nil {
		return err
	}
	defer view.Close()

	coordCfg := session.CoordinatorConfig{
		ImageTimeout:  time.Duration(p.flags.ImageTimeout) * time.Second,
		SentenceCount: p.flags.SentenceCount,
	}
	// The interface conversions keep typed-nil collaborators out of the
	// coordinator's nil checks.
	var speakerIface session.Speaker
	if speaker != nil {
		speakerIface = speaker
	}
	var imagesIface session.ImageSearcher
	if fetcher != nil {
		imagesIface = fetcher
	}
	var genIface session.SentenceGenerator
	if generator != nil {
		genIface = generator
	}
	coord := session.NewCoordinator(disp, speakerIface, imagesIface, genIface, coordCfg, p.logger)

	ctrlCfg := session.ControllerConfig{
		TranslationDelay: time.Duration(p.flags.TranslationDelay) * time.Millisecond,
		ExamInterval:     p.flags.ExamInterval,
		ExamWordCount:    p.flags.ExamWordCount,
		ExamChoices:      p.flags.ExamChoices,
	}
	store := vocab.NewStore()
	ctrl := session.NewController(store, coord, disp, view, caps, ctrlCfg, p.logger)

	go disp.Run()

	if vocabFile != "" {
		disp.Dispatch(func() { ctrl.LoadFile(vocabFile) })
	}

	fmt.Println("palabra — press Enter for the next word, type help for commands.")

	loop := term.NewLoop(ctrl, disp, os.Stdout, func() {
		ctrl.Shutdown()
		disp.Stop()
	})
	loop.Run(os.Stdin)

	if speaker != nil {
		speaker.Cleanup()
	}
	return nil
}

// ExportAnki loads the vocabulary file and writes an Anki deck into
// the export directory. It returns the output path.
func (p *Processor) ExportAnki(vocabFile string) (string, error) {
	if vocabFile == "" {
		return "", fmt.Errorf("a vocabulary file is required for --anki")
	}

	pairs, err := vocab.LoadFile(vocabFile)
	if err != nil {
		return "", fmt.Errorf("failed to load vocabulary: %w", err)
	}
	if len(pairs) == 0 {
		return "", fmt.Errorf("vocabulary file contained no usable entries")
	}

	if err := os.MkdirAll(p.flags.ExportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	gen := anki.NewGenerator(p.flags.DeckName)
	gen.AddPairs(pairs, nil)

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = filepath.Join(p.flags.ExportDir, "vocabulary.csv")
		err = gen.GenerateCSV(outputPath)
	} else {
		outputPath = filepath.Join(p.flags.ExportDir, "vocabulary.apkg")
		err = gen.GenerateAPKG(outputPath)
	}
	if err != nil {
		return "", err
	}

	total, _ := gen.Stats()
	p.logger.Info("deck exported", zap.String("path", outputPath), zap.Int("cards", total))
	return outputPath, nil
}

// buildSpeaker assembles the TTS provider chain. OpenAI falls back to
// espeak-ng when a key is configured but synthesis fails; without a
// key espeak-ng is used directly.
func (p *Processor) buildSpeaker() (*audio.Speaker, error) {
	if p.flags.SkipAudio {
		return nil, nil
	}

	cfg := audio.DefaultProviderConfig()
	cfg.Provider = p.flags.AudioProvider
	cfg.OutputFormat = p.flags.AudioFormat
	cfg.OpenAIKey = cli.GetOpenAIKey()
	cfg.OpenAIModel = p.flags.OpenAIModel
	cfg.ESpeakVoice = p.flags.ESpeakVoice
	cfg.ESpeakSpeed = p.flags.ESpeakSpeed
	if p.flags.OpenAIVoice != "" {
		cfg.OpenAIVoice = p.flags.OpenAIVoice
	}
	if p.flags.OpenAISpeed > 0 {
		cfg.OpenAISpeed = p.flags.OpenAISpeed
	}
	if p.flags.OpenAIInstruction != "" {
		cfg.OpenAIInstruction = p.flags.OpenAIInstruction
	}
	cfg.EnableCache, cfg.CacheDir = cacheSettings()

	if cfg.Provider == "openai" && cfg.OpenAIKey == "" {
		p.logger.Info("no OpenAI key, using espeak-ng for speech")
		cfg.Provider = "espeak"
	}

	provider, err := audio.NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Provider == "openai" {
		espeakCfg := *cfg
		espeakCfg.Provider = "espeak"
		if espeak, espeakErr := audio.NewESpeakProvider(&espeakCfg); espeakErr == nil {
			provider = audio.NewProviderWithFallback(provider, espeak)
		}
	}

	if err := provider.IsAvailable(); err != nil {
		return nil, err
	}

	return audio.NewSpeaker(provider, audio.NewPlayer())
}

// buildFetcher assembles the image search client, nil when images are
// skipped or no API key is configured
func (p *Processor) buildFetcher() *image.Fetcher {
	if p.flags.SkipImages {
		return nil
	}
	apiKey := cli.GetPixabayKey()
	if apiKey == "" {
		return nil
	}

	// Per-request deadlines come from the coordinator's context.
	client := image.NewPixabayClient(apiKey, 0)
	return image.NewFetcher(client, 0)
}

// buildGenerator assembles the sentence backend wrapped in a circuit
// breaker and probes its availability once
func (p *Processor) buildGenerator() (sentences.Generator, session.Capabilities) {
	cfg := sentences.DefaultConfig()
	cfg.Provider = p.flags.SentenceProvider
	cfg.OpenAIKey = cli.GetOpenAIKey()
	cfg.OpenAIModel = p.flags.SentenceModel
	cfg.BaseURL = p.flags.OpenAIBaseURL
	cfg.GeminiKey = cli.GetGeminiKey()
	cfg.GeminiModel = p.flags.GeminiModel

	generator, err := sentences.NewGenerator(cfg)
	if err != nil {
		p.logger.Info("AI sentences unavailable, using templates", zap.Error(err))
		return nil, session.Capabilities{AISentences: false}
	}

	if err := generator.IsAvailable(); err != nil {
		p.logger.Info("sentence backend unreachable, using templates",
			zap.String("backend", generator.Name()), zap.Error(err))
		return nil, session.Capabilities{AISentences: false}
	}

	return sentences.NewBreakerGenerator(generator), session.Capabilities{AISentences: true}
}
