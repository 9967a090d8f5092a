package wizard

const (
  countryPrompt = `🌍 Шаг 1/10: Выбор страны

Напишите название страны в именительном падеже:
Пример: Турция или Египет

💡 Совет: Указывайте одну страну для точного поиска`

  departureCityPrompt = `🛫 Шаг 2/10: Город вылета

Напишите город вылета в именительном падеже:
Пример: Москва или Санкт-Петербург`

  resortsPrompt = `🏖 Шаг 3/10: Выбор курортов

Напишите города/курорты через пробел:
Пример: Анталья Кемер Сиде

Если курорты не важны, напишите нет`

  mealsPrompt = `🍽 Шаг 4/10: Тип питания

Доступные варианты:
• RO - без питания
• BB - завтраки
• HB - завтрак + ужин
• FB - полный пансион
• AI - всё включено
• UAI - ультра всё включено
• AI(NOALC) - всё включено без алкоголя

Введите коды через пробел или не нужно`

  adultsPrompt = `👨‍👩‍👧‍👦 Шаг 5/10: Количество туристов

Напишите, сколько будет взрослых людей:`

  childrenPrompt = `👶 Шаг 6/10: Дети

Напишите количество детей:
Пример: 2 или 0 если детей нет`

  infantsPrompt = `🍼 Шаг 7/10: Младенцы

Напишите количество младенцев (до 2 лет):
Пример: 1 или 0 если младенцев нет`

  nightsPrompt = `🗓 Шаг 8/10: Продолжительность тура

Напишите минимальное и максимальное количество ночей:
Пример: 7 14 - от 7 до 14 ночей`

  hotelCategoryPrompt = `⭐ Шаг 9/10: Категория отеля

Напишите звездность отелей через пробел:
Пример: 3 4 5 - отели 3*, 4* и 5*`

  datesPrompt = `📅 Шаг 10/10: Даты заезда

Введите начальную и конечную даты в формате:
Пример: 2025-06-01 2025-06-15

Где:
• 2025-06-01 - дата заезда
• 2025-06-15 - дата выезда`
)
