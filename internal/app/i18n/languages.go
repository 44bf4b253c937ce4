package i18n

// Languages holds every supported language table. Order matters: the first
// entry is the default fallback.
var Languages = []Language{
	{
		Code: "tr",
		Name: "Türkçe",
		Flag: "🇹🇷",
		Strings: Strings{
			Welcome:      "Hoş Geldiniz",
			CreateRoom:   "Oda Oluştur",
			JoinRoom:     "Odaya Gir",
			RoomName:     "Oda İsmi",
			RoomPass:     "Şifre",
			Username:     "Kullanıcı Adı",
			CreateBtn:    "Oluştur",
			JoinBtn:      "Giriş Yap",
			RoomNotFound: "Böyle bir oda bulunamadı.",
			WrongPass:    "Hatalı oda şifresi.",
			TypeMessage:  "Bir mesaj yazın...",
			MovieLink:    "Film/Video Linki (YouTube)",
			WatchBtn:     "İzle",
			SendPhoto:    "Fotoğraf",
			Back:         "Geri",
		},
	},
	{
		Code: "zza",
		Name: "Zazaca",
		Flag: "🪕",
		Strings: Strings{
			Welcome:      "Xêr Amayê",
			CreateRoom:   "Ode Vırazê",
			JoinRoom:     "Ode Kuyê",
			RoomName:     "Namê Ode",
			RoomPass:     "Şifre",
			Username:     "Namê Karberi",
			CreateBtn:    "Vırazê",
			JoinBtn:      "Kuyê",
			RoomNotFound: "Na ode çina.",
			WrongPass:    "Şifre ğelet o.",
			TypeMessage:  "Mesaj bınusne...",
			MovieLink:    "Linkê Filmi",
			WatchBtn:     "Bıvêne",
			SendPhoto:    "Resım",
			Back:         "Peyser",
		},
	},
	{
		Code: "ku",
		Name: "Kürtçe",
		Flag: "☀️",
		Strings: Strings{
			Welcome:      "Bi xêr hatî",
			CreateRoom:   "Ode ava bike",
			JoinRoom:     "Bikeve odê",
			RoomName:     "Navê odeyê",
			RoomPass:     "Şîfre",
			Username:     "Navê bikarhêner",
			CreateBtn:    "Ava bike",
			JoinBtn:      "Têkeve",
			RoomNotFound: "Odeyek wusa nehat dîtin.",
			WrongPass:    "Şîfreya şaş.",
			TypeMessage:  "Mesajek binivîse...",
			MovieLink:    "Lînka fîlmê",
			WatchBtn:     "Temaşe bike",
			SendPhoto:    "Wêne",
			Back:         "Vegere",
		},
	},
	{
		Code: "en",
		Name: "English",
		Flag: "🇬🇧",
		Strings: Strings{
			Welcome:      "Welcome",
			CreateRoom:   "Create Room",
			JoinRoom:     "Join Room",
			RoomName:     "Room Name",
			RoomPass:     "Password",
			Username:     "Username",
			CreateBtn:    "Create",
			JoinBtn:      "Join",
			RoomNotFound: "Room not found.",
			WrongPass:    "Wrong password.",
			TypeMessage:  "Type a message...",
			MovieLink:    "Movie/Video Link",
			WatchBtn:     "Watch",
			SendPhoto:    "Photo",
			Back:         "Back",
		},
	},
	{
		Code: "de",
		Name: "Deutsch",
		Flag: "🇩🇪",
		Strings: Strings{
			Welcome:      "Willkommen",
			CreateRoom:   "Raum erstellen",
			JoinRoom:     "Raum beitreten",
			RoomName:     "Raumname",
			RoomPass:     "Passwort",
			Username:     "Benutzername",
			CreateBtn:    "Erstellen",
			JoinBtn:      "Beitreten",
			RoomNotFound: "Raum nicht gefunden.",
			WrongPass:    "Falsches Passwort.",
			TypeMessage:  "Nachricht schreiben...",
			MovieLink:    "Filmlink",
			WatchBtn:     "Ansehen",
			SendPhoto:    "Foto",
			Back:         "Zurück",
		},
	},
	{
		Code: "fr",
		Name: "Français",
		Flag: "🇫🇷",
		Strings: Strings{
			Welcome:      "Bienvenue",
			CreateRoom:   "Créer une salle",
			JoinRoom:     "Rejoindre",
			RoomName:     "Nom de la salle",
			RoomPass:     "Mot de passe",
			Username:     "Pseudo",
			CreateBtn:    "Créer",
			JoinBtn:      "Rejoindre",
			RoomNotFound: "Salle non trouvée.",
			WrongPass:    "Mot de passe incorrect.",
			TypeMessage:  "Écrire un message...",
			MovieLink:    "Lien du film",
			WatchBtn:     "Regarder",
			SendPhoto:    "Photo",
			Back:         "Retour",
		},
	},
	{
		Code: "ar",
		Name: "العربية",
		Flag: "🇸🇦",
		Strings: Strings{
			Welcome:      "أهلاً بك",
			CreateRoom:   "إنشاء غرفة",
			JoinRoom:     "انضمام للغرفة",
			RoomName:     "اسم الغرفة",
			RoomPass:     "كلمة المرور",
			Username:     "اسم المستخدم",
			CreateBtn:    "إنشاء",
			JoinBtn:      "دخول",
			RoomNotFound: "الغرفة غير موجودة.",
			WrongPass:    "كلمة المرور خاطئة.",
			TypeMessage:  "اكتب رسالة...",
			MovieLink:    "رابط الفيلم",
			WatchBtn:     "مشاهدة",
			SendPhoto:    "صورة",
			Back:         "رجوع",
		},
	},
	{
		Code: "es",
		Name: "Español",
		Flag: "🇪🇸",
		Strings: Strings{
			Welcome:      "Bienvenido",
			CreateRoom:   "Crear Sala",
			JoinRoom:     "Unirse a Sala",
			RoomName:     "Nombre de Sala",
			RoomPass:     "Contraseña",
			Username:     "Usuario",
			CreateBtn:    "Crear",
			JoinBtn:      "Unirse",
			RoomNotFound: "Sala no encontrada.",
			WrongPass:    "Contraseña incorrecta.",
			TypeMessage:  "Escribe un mensaje...",
			MovieLink:    "Link de Película",
			WatchBtn:     "Ver",
			SendPhoto:    "Foto",
			Back:         "Volver",
		},
	},
}
