package model

// PageContext описывает контекст страницы дашборда: текущую команду и пользователя.
// Заполняется один раз при построении диспетчера из маршрута или сессии.
type PageContext struct {
	Team string
	User string
}
