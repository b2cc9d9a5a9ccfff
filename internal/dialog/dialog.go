package dialog

import "sync"

// Step шаг пошагового диалога с пользователем.
type Step int

const (
	StepNone Step = iota

	// Ожидание кода доступа после /start
	StepAccessCode

	// Запись подхода для упражнения из программы
	StepLogWeight
	StepLogReps

	// Запись свободного упражнения
	StepCustomName
	StepCustomWeight
	StepCustomReps

	// Выбор групп мышц для генерации упражнений
	StepAIMuscles

	// Админские шаги
	StepAdminProgramName
	StepAdminDayName
	StepAdminExerciseName
	StepAdminExerciseDesc
	StepAdminExerciseImage
	StepAdminExerciseTags
	StepAdminAddUser
)

// State состояние диалога одного пользователя. Поля контекста
// заполняются по мере необходимости конкретным шагом.
type State struct {
	Step       Step
	ExerciseID int64   // упражнение, для которого записывается подход
	Name       string  // имя свободного упражнения или создаваемой сущности
	Weight     float64 // вес, введённый на предыдущем шаге
	ProgramID  int64
	DayID      int64

	// Контекст админского создания упражнения
	Description string
	Tags        string // список тегов через запятую
	WeightType  int

	// Выбранные группы мышц через запятую
	Muscles string
}

// Store потокобезопасное хранилище состояний диалогов по chat id.
type Store struct {
	mu     sync.RWMutex
	states map[int64]State
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{states: make(map[int64]State)}
}

// Get возвращает состояние диалога пользователя.
// Для неизвестного пользователя возвращается нулевое состояние (StepNone).
func (s *Store) Get(chatID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[chatID]
}

// Set сохраняет состояние диалога пользователя.
func (s *Store) Set(chatID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Step == StepNone {
		delete(s.states, chatID)
		return
	}
	s.states[chatID] = st
}

// Clear сбрасывает диалог пользователя.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}
