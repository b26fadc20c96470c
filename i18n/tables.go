package i18n

var tables = map[Locale]map[string]string{
	English: {
		// Hero
		"hero.title":    "Business Intelligence Analyst",
		"hero.subtitle": "Turning raw data into strategic decisions",
		"hero.cta":      "View Portfolio",
		"hero.admin":    "Admin panel",

		// About
		"about.title":   "About",
		"about.default": "I specialize in translating complex datasets into clear, actionable insights that empower stakeholders to make confident decisions. With hands-on experience in SQL, dashboard development, and reporting automation, I deliver data solutions that directly contribute to operational efficiency and revenue growth.",

		"tech.title": "Tech Stack",

		// Projects
		"projects.title":         "Featured Projects",
		"projects.loading":       "Loading projects...",
		"projects.empty":         "No projects available yet.",
		"projects.dashboard":     "Dashboard",
		"projects.github":        "GitHub",
		"projects.caseStudy":     "View Case Study",
		"projects.caseStudySoon": "Case Study Coming Soon",

		// Contact
		"contact.title":     "Get in Touch",
		"contact.default":   "Currently exploring BI Analyst opportunities — let's discuss how I can add value to your team.",
		"contact.linkedin":  "LinkedIn",
		"contact.github":    "GitHub",
		"contact.email":     "Email",
		"contact.copyright": "© {year} All rights reserved.",

		"contact.form.name":    "Name",
		"contact.form.email":   "Email",
		"contact.form.message": "Message",
		"contact.form.send":    "Send message",
		"contact.form.sent":    "Thanks! Your message was sent.",
		"contact.form.failed":  "Could not send your message",

		"loading": "Loading...",

		// Case study
		"caseStudy.back":              "Back to Portfolio",
		"caseStudy.notFound":          "Project not found",
		"caseStudy.overview":          "Project Overview",
		"caseStudy.dataTools":         "Data & Tools",
		"caseStudy.dataSource":        "Data Source",
		"caseStudy.toolsUsed":         "Tools Used",
		"caseStudy.approach":          "Analytical Approach",
		"caseStudy.insights":          "Key Insights",
		"caseStudy.evidence":          "Visual Evidence",
		"caseStudy.recommendations":   "Business Recommendations",
		"caseStudy.defaultOverview":   "This project addresses a common business problem in the sector, where lack of data visibility hinders strategic decision-making.",
		"caseStudy.defaultDataSource": "Synthetic data generated to simulate a realistic business scenario, including performance metrics, customer data, and historical transactions.",
		"caseStudy.defaultApproach":   "The analysis was performed following a structured methodology that includes data exploration, cleaning and validation, descriptive analysis with key metrics, and visualization through interactive dashboards.",
		"caseStudy.defaultInsight1":   "20% of customers generate 80% of revenue, confirming the Pareto principle.",
		"caseStudy.defaultInsight2":   "Activity peaks concentrate on specific days of the week, suggesting optimization opportunities.",
		"caseStudy.defaultInsight3":   "There is a significant correlation between response time and customer satisfaction.",
		"caseStudy.defaultInsight4":   "Conversion rates vary considerably depending on the acquisition channel used.",
		"caseStudy.defaultRec1":       "Implement a loyalty program focused on retaining high-value customers.",
		"caseStudy.defaultRec2":       "Optimize resources based on demand according to detected activity patterns.",
		"caseStudy.defaultRec3":       "Improve response times by establishing stricter SLAs.",
		"caseStudy.defaultRec4":       "Review channel strategy by reallocating budget to best performing ones.",
		"caseStudy.imageAlt":          "Visual evidence",

		// Not found
		"notFound.title":    "404",
		"notFound.subtitle": "Page not found",
		"notFound.back":     "Back to Home",

		// Auth
		"auth.title":    "Admin sign in",
		"auth.email":    "Email",
		"auth.password": "Password",
		"auth.submit":   "Sign in",
		"auth.invalid":  "Invalid email or password",

		// Admin
		"admin.title":           "Admin Panel",
		"admin.viewSite":        "View site",
		"admin.signOut":         "Sign out",
		"admin.tab.settings":    "Settings",
		"admin.tab.projects":    "Projects",
		"admin.tab.caseStudies": "Case Studies",
		"admin.tab.messages":    "Messages",
		"admin.save":            "Save",
		"admin.cancel":          "Cancel",
		"admin.edit":            "Edit",
		"admin.delete":          "Delete",
		"admin.new":             "New",
		"admin.saved":           "Saved",
		"admin.created":         "Created",
		"admin.updated":         "Updated",
		"admin.saveFailed":      "Could not save",
		"admin.deleted":         "Deleted",
		"admin.deleteFailed":    "Could not delete",
		"admin.confirmDelete":   "Are you sure you want to delete this?",
		"admin.confirm":         "Yes, delete",
		"admin.uploaded":        "Images uploaded",
		"admin.uploadFailed":    "Could not upload",
		"admin.rememberSave":    "Remember to save your changes",
		"admin.projectNotFound": "Project not found",
		"admin.noProjectsLeft":  "Every project already has a case study",
		"admin.selectProject":   "Select a project",
		"admin.unread":          "unread",
		"admin.markRead":        "Mark as read",
		"admin.markUnread":      "Mark as unread",
		"admin.noMessages":      "No messages yet.",
		"admin.visible":         "Visible",
		"admin.hidden":          "Hidden",
		"admin.field.name":      "Name",
		"admin.field.title":     "Professional title",
		"admin.field.tagline":   "Tagline",
		"admin.field.photo":     "Profile photo",
		"admin.field.photoURL":  "Or paste a URL directly...",
		"admin.field.linkedin":  "LinkedIn URL",
		"admin.field.github":    "GitHub URL",
		"admin.field.email":     "Email",
		"admin.field.about":     "About text",
		"admin.field.contact":   "Contact text",
		"admin.field.project":   "Project",
		"admin.field.desc":      "Description",
		"admin.field.tools":     "Tools (comma separated)",
		"admin.field.dashboard": "Dashboard URL",
		"admin.field.order":     "Display order",
		"admin.field.visible":   "Visible on the site",
		"admin.field.overview":  "Project overview",
		"admin.field.sources":   "Data sources",
		"admin.field.toolsUsed": "Tools (one per line)",
		"admin.field.approach":  "Analytical approach",
		"admin.field.insights":  "Key insights (one per line)",
		"admin.field.recs":      "Recommendations (one per line)",
		"admin.field.images":    "Images",
		"admin.field.removeImg": "Remove",
	},
	Spanish: {
		"hero.title":    "Analista de Business Intelligence",
		"hero.subtitle": "Transformando datos en decisiones estratégicas",
		"hero.cta":      "Ver Portfolio",
		"hero.admin":    "Panel de administración",

		"about.title":   "Sobre Mí",
		"about.default": "Me especializo en traducir conjuntos de datos complejos en insights claros y accionables que permiten a los stakeholders tomar decisiones con confianza. Con experiencia práctica en SQL, desarrollo de dashboards y automatización de reportes, entrego soluciones de datos que contribuyen directamente a la eficiencia operativa y al crecimiento de ingresos.",

		"tech.title": "Stack Tecnológico",

		"projects.title":         "Proyectos Destacados",
		"projects.loading":       "Cargando proyectos...",
		"projects.empty":         "No hay proyectos disponibles aún.",
		"projects.dashboard":     "Dashboard",
		"projects.github":        "GitHub",
		"projects.caseStudy":     "Ver Case Study",
		"projects.caseStudySoon": "Case Study Próximamente",

		"contact.title":     "Contacto",
		"contact.default":   "Actualmente explorando oportunidades como Analista BI — hablemos sobre cómo puedo aportar valor a tu equipo.",
		"contact.linkedin":  "LinkedIn",
		"contact.github":    "GitHub",
		"contact.email":     "Email",
		"contact.copyright": "© {year} Todos los derechos reservados.",

		"contact.form.name":    "Nombre",
		"contact.form.email":   "Email",
		"contact.form.message": "Mensaje",
		"contact.form.send":    "Enviar mensaje",
		"contact.form.sent":    "¡Gracias! Tu mensaje fue enviado.",
		"contact.form.failed":  "No se pudo enviar tu mensaje",

		"loading": "Cargando...",

		"caseStudy.back":              "Volver al Portfolio",
		"caseStudy.notFound":          "Proyecto no encontrado",
		"caseStudy.overview":          "Resumen del Proyecto",
		"caseStudy.dataTools":         "Datos y Herramientas",
		"caseStudy.dataSource":        "Fuente de Datos",
		"caseStudy.toolsUsed":         "Herramientas Utilizadas",
		"caseStudy.approach":          "Enfoque Analítico",
		"caseStudy.insights":          "Hallazgos Clave",
		"caseStudy.evidence":          "Evidencia Visual",
		"caseStudy.recommendations":   "Recomendaciones de Negocio",
		"caseStudy.defaultOverview":   "Este proyecto aborda un problema de negocio común en el sector, donde la falta de visibilidad sobre los datos dificulta la toma de decisiones estratégicas.",
		"caseStudy.defaultDataSource": "Datos sintéticos generados para simular un escenario empresarial realista, incluyendo métricas de rendimiento, datos de clientes y transacciones históricas.",
		"caseStudy.defaultApproach":   "El análisis se realizó siguiendo una metodología estructurada que incluye exploración de datos, limpieza y validación, análisis descriptivo con métricas clave, y visualización mediante dashboards interactivos.",
		"caseStudy.defaultInsight1":   "Se identificó que el 20% de los clientes generan el 80% de los ingresos, confirmando la regla de Pareto.",
		"caseStudy.defaultInsight2":   "Los picos de actividad se concentran en días específicos de la semana, sugiriendo oportunidades de optimización.",
		"caseStudy.defaultInsight3":   "Existe una correlación significativa entre el tiempo de respuesta y la satisfacción del cliente.",
		"caseStudy.defaultInsight4":   "Las tasas de conversión varían considerablemente según el canal de adquisición utilizado.",
		"caseStudy.defaultRec1":       "Implementar programa de fidelización enfocado en retener a los clientes de alto valor.",
		"caseStudy.defaultRec2":       "Optimizar recursos según demanda basándose en los patrones de actividad detectados.",
		"caseStudy.defaultRec3":       "Mejorar tiempos de respuesta estableciendo SLAs más estrictos.",
		"caseStudy.defaultRec4":       "Revisar estrategia de canales reasignando presupuesto hacia los de mejor rendimiento.",
		"caseStudy.imageAlt":          "Evidencia visual",

		"notFound.title":    "404",
		"notFound.subtitle": "Página no encontrada",
		"notFound.back":     "Volver al Inicio",

		"auth.title":    "Acceso de administrador",
		"auth.email":    "Email",
		"auth.password": "Contraseña",
		"auth.submit":   "Entrar",
		"auth.invalid":  "Email o contraseña incorrectos",

		"admin.title":           "Panel Admin",
		"admin.viewSite":        "Ver sitio",
		"admin.signOut":         "Cerrar sesión",
		"admin.tab.settings":    "Configuración",
		"admin.tab.projects":    "Proyectos",
		"admin.tab.caseStudies": "Casos de Estudio",
		"admin.tab.messages":    "Mensajes",
		"admin.save":            "Guardar",
		"admin.cancel":          "Cancelar",
		"admin.edit":            "Editar",
		"admin.delete":          "Eliminar",
		"admin.new":             "Nuevo",
		"admin.saved":           "Guardado",
		"admin.created":         "Creado",
		"admin.updated":         "Actualizado",
		"admin.saveFailed":      "No se pudo guardar",
		"admin.deleted":         "Eliminado",
		"admin.deleteFailed":    "No se pudo eliminar",
		"admin.confirmDelete":   "¿Estás seguro de eliminar esto?",
		"admin.confirm":         "Sí, eliminar",
		"admin.uploaded":        "Imágenes subidas",
		"admin.uploadFailed":    "No se pudo subir",
		"admin.rememberSave":    "Recuerda guardar los cambios",
		"admin.projectNotFound": "Proyecto no encontrado",
		"admin.noProjectsLeft":  "Todos los proyectos ya tienen un caso de estudio",
		"admin.selectProject":   "Selecciona un proyecto",
		"admin.unread":          "sin leer",
		"admin.markRead":        "Marcar como leído",
		"admin.markUnread":      "Marcar como no leído",
		"admin.noMessages":      "No hay mensajes aún.",
		"admin.visible":         "Visible",
		"admin.hidden":          "Oculto",
		"admin.field.name":      "Nombre",
		"admin.field.title":     "Título profesional",
		"admin.field.tagline":   "Tagline",
		"admin.field.photo":     "Foto de perfil",
		"admin.field.photoURL":  "O pega una URL directamente...",
		"admin.field.linkedin":  "URL de LinkedIn",
		"admin.field.github":    "URL de GitHub",
		"admin.field.email":     "Email",
		"admin.field.about":     "Texto sobre mí",
		"admin.field.contact":   "Texto de contacto",
		"admin.field.project":   "Proyecto",
		"admin.field.desc":      "Descripción",
		"admin.field.tools":     "Herramientas (separadas por comas)",
		"admin.field.dashboard": "URL del dashboard",
		"admin.field.order":     "Orden",
		"admin.field.visible":   "Visible en el sitio",
		"admin.field.overview":  "Resumen del proyecto",
		"admin.field.sources":   "Fuentes de datos",
		"admin.field.toolsUsed": "Herramientas (una por línea)",
		"admin.field.approach":  "Enfoque analítico",
		"admin.field.insights":  "Hallazgos clave (uno por línea)",
		"admin.field.recs":      "Recomendaciones (una por línea)",
		"admin.field.images":    "Imágenes",
		"admin.field.removeImg": "Quitar",
	},
}
