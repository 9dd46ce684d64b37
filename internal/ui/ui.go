package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlejeune/soiree-tui/internal/deck"
	"github.com/mlejeune/soiree-tui/internal/engine"
	"github.com/mlejeune/soiree-tui/internal/store"
	"github.com/mlejeune/soiree-tui/internal/stories"
	"github.com/mlejeune/soiree-tui/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewConfig   = "config"
	viewPlay     = "play"
	viewCards    = "cards"
	viewStories  = "stories"
	viewHelp     = "help"
)

const challengeProb = 0.4

const prefStoryLocale = "stories_locale"

type model struct {
	ctx     context.Context
	cfg     util.Config
	db      *store.DB
	seed    engine.RunSeed
	version string

	view   string
	status string
	width  int
	height int
	styles styles

	locale deck.Locale

	// word game (olemains)
	game        deck.Game
	session     *engine.Session
	themeChosen bool
	themeID     string
	tier        int

	// visual card game (pictionary / esquisse)
	cardGame   deck.Game
	cards      []deck.Card
	order      []int
	pos        int
	cardHidden bool
	challenge  bool
	showLegend bool
	cardRng    *engine.Stream

	// riddle browser
	storySets map[deck.Locale][]stories.Story
	browser   *stories.Browser

	helpRendered string
}

// initialModel boots to the main menu; nothing is loaded until a game is
// picked, so a broken data file only breaks its own entry.
func initialModel(ctx context.Context, db *store.DB, cfg util.Config, version string) model {
	seed, err := engine.NewRunSeed(cfg.SeedText)
	if err != nil {
		seed, _ = engine.NewRunSeed("fallback-seed")
	}
	m := model{
		ctx:     ctx,
		cfg:     cfg,
		db:      db,
		seed:    seed,
		version: version,
		view:    viewMainMenu,
		locale:  deck.NormalizeLocale(cfg.Locale),
		styles:  newStyles(),
	}
	return m
}

func (m *model) dataPath(name string) string {
	return filepath.Join(m.cfg.DataDir, name)
}

// openWordGame loads the olemains deck and rehydrates any saved session.
func (m *model) openWordGame() {
	m.game = deck.GameByKey("olemains")
	raw, err := deck.ReadFile(m.dataPath(m.game.File))
	if err != nil {
		m.status = loadErrorMessage(err)
		return
	}
	s := engine.NewSession(m.seed, m.locale, m.cfg.StickyBonus)
	if err := s.LoadData(raw, m.game.Schema); err != nil {
		m.status = loadErrorMessage(err)
		return
	}
	m.session = s
	m.status = ""
	if sn, ok, err := store.NewSessionRepo(m.db).Load(m.ctx, m.game.Key); err == nil && ok {
		s.Restore(sn)
		m.locale = s.Locale()
	}
	if s.State() == engine.StatePlaying {
		key := s.Key()
		m.themeID, m.tier, m.themeChosen = key.Theme, key.Tier, true
		m.view = viewPlay
		return
	}
	m.themeChosen = false
	m.themeID = ""
	m.tier = 0
	m.view = viewConfig
}

func (m *model) startWordGame() {
	if m.session == nil || m.themeID == "" || m.tier == 0 {
		return
	}
	m.session.Start(deck.DrawKey{Theme: m.themeID, Tier: m.tier})
	m.persistSession()
	m.view = viewPlay
}

func (m *model) persistSession() {
	if m.session == nil {
		return
	}
	_ = store.NewSessionRepo(m.db).Save(m.ctx, m.game.Key, m.session.Snapshot())
}

// openCardGame loads a visual deck and shuffles its draw order.
func (m *model) openCardGame(key string) {
	g := deck.GameByKey(key)
	raw, err := deck.ReadFile(m.dataPath(g.File))
	if err != nil {
		m.status = loadErrorMessage(err)
		return
	}
	t := deck.NewTable(deck.ParseTable(string(raw)), "card_id")
	cards, err := deck.Cards(t, deck.AllLocales)
	if err != nil {
		m.status = loadErrorMessage(err)
		return
	}
	m.cardGame = g
	m.cards = cards
	m.cardRng = m.seed.Stream("cards:" + g.Key)
	m.order = shuffledOrder(m.cardRng, len(cards))
	m.pos = 0
	m.showLegend = false
	m.status = ""
	m.rollCard()
	m.view = viewCards
}

// rollCard resets per-card state: the word shows again and the challenge
// banner is re-rolled independently on every display.
func (m *model) rollCard() {
	m.cardHidden = false
	m.challenge = m.cardGame.HasChallenge && m.cardRng.Float64() < challengeProb
}

func shuffledOrder(rng *engine.Stream, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// openStories loads every locale's riddle file. A missing locale file just
// leaves that set empty, exactly like the web version's allSettled load.
func (m *model) openStories() {
	if m.storySets == nil {
		m.storySets = map[deck.Locale][]stories.Story{}
		for _, l := range deck.AllLocales {
			raw, err := deck.ReadFile(m.dataPath(fmt.Sprintf("black_stories_%s.json", l)))
			if err != nil {
				continue
			}
			set, err := stories.Load(raw, string(l))
			if err != nil {
				continue
			}
			m.storySets[l] = set
		}
	}
	if v, ok, err := store.NewPrefsRepo(m.db).Get(m.ctx, prefStoryLocale); err == nil && ok {
		m.locale = deck.NormalizeLocale(v)
	}
	m.restartStories()
	m.view = viewStories
}

// restartStories starts a fresh history in the current locale.
func (m *model) restartStories() {
	m.browser = stories.NewBrowser(m.seed.Stream("stories:"+string(m.locale)), m.storySets[m.locale])
}

func (m *model) cycleLocale() {
	switch m.locale {
	case deck.LocaleFR:
		m.locale = deck.LocaleEN
	case deck.LocaleEN:
		m.locale = deck.LocaleES
	default:
		m.locale = deck.LocaleFR
	}
	if m.session != nil {
		m.session.SetLocale(m.locale)
	}
}

func loadErrorMessage(err error) string {
	return "Data load failed: " + err.Error() + " — check the data directory (--data) and retry."
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return nil }

func (m model) View() string {
	switch m.view {
	case viewMainMenu:
		return m.renderMainMenu()
	case viewConfig:
		return m.renderConfig()
	case viewPlay:
		return m.renderPlay()
	case viewCards:
		return m.renderCards()
	case viewStories:
		return m.renderStories()
	case viewHelp:
		return m.renderHelp()
	}
	return ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewMainMenu:
			return m.updateMainMenu(k)
		case viewConfig:
			return m.updateConfig(k)
		case viewPlay:
			return m.updatePlay(k)
		case viewCards:
			return m.updateCards(k)
		case viewStories:
			return m.updateStories(k)
		case viewHelp:
			if k == "esc" || k == "q" {
				m.view = viewMainMenu
			}
			return m, nil
		}
	}
	return m, nil
}

func (m model) updateMainMenu(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "1":
		m.openWordGame()
	case "2":
		m.openCardGame("pictionary")
	case "3":
		m.openCardGame("esquisse")
	case "4":
		m.openStories()
	case "?", "5":
		m.view = viewHelp
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateConfig(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "1", "2", "3":
		n := int(k[0] - '0')
		if !m.themeChosen {
			m.themeID = deck.Themes[n-1].ID
			m.themeChosen = true
		} else {
			m.tier = n
		}
	case "enter":
		m.startWordGame()
	case "r":
		m.themeChosen = false
		m.themeID = ""
		m.tier = 0
	case "esc", "q":
		m.view = viewMainMenu
	}
	return m, nil
}

func (m model) updatePlay(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "f":
		m.session.FoundWord()
		m.persistSession()
	case "s", "n":
		m.session.Skip()
		m.persistSession()
	case "h":
		m.session.ToggleVisibility()
		m.persistSession()
	case "l":
		m.cycleLocale()
		m.persistSession()
	case "b", "esc":
		m.session.Reset(false)
		m.persistSession()
		m.view = viewConfig
	case "R":
		m.session.Reset(true)
		_ = store.NewSessionRepo(m.db).Clear(m.ctx, m.game.Key)
		m.view = viewConfig
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateCards(k string) (tea.Model, tea.Cmd) {
	if len(m.cards) == 0 {
		if k == "esc" || k == "q" {
			m.view = viewMainMenu
		}
		return m, nil
	}
	switch k {
	case "n", "right", " ":
		m.pos = (m.pos + 1) % len(m.order)
		m.rollCard()
	case "p", "left":
		m.pos = (m.pos - 1 + len(m.order)) % len(m.order)
		m.rollCard()
	case "h":
		m.cardHidden = !m.cardHidden
	case "l":
		m.cycleLocale()
	case "i":
		m.showLegend = !m.showLegend
	case "esc", "q":
		m.view = viewMainMenu
	}
	return m, nil
}

func (m model) updateStories(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "n", "right":
		m.browser.Next()
	case "p", "left":
		m.browser.Prev()
	case " ", "enter":
		m.browser.ToggleReveal()
	case "l":
		m.cycleLocale()
		_ = store.NewPrefsRepo(m.db).Set(m.ctx, prefStoryLocale, string(m.locale))
		m.restartStories()
	case "esc", "q":
		m.view = viewMainMenu
	}
	return m, nil
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		width = 100
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
