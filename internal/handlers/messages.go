package handlers

// User-facing messages, in the web client's language.
const (
	msgRegistered         = "تم إنشاء حسابك بنجاح"
	msgUpdated            = "تم تعديل البيانات بنجاح"
	msgDeleted            = "تم حذف الحساب بنجاح"
	msgInvalidCredentials = "البريد الإلكتروني أو كلمة المرور غير صحيحين"
	msgEmailTaken         = "البريد الإلكتروني مستخدم مسبقاً"
	msgUserNotFound       = "الحساب غير موجود"
	msgDoctorNotFound     = "الطبيب غير موجود"
	msgNotFound           = "الصفحة غير موجودة"
	msgInvalidRequest     = "البيانات المرسلة غير صالحة"

	msgRegisterFailed = "حدث خطأ أثناء التسجيل"
	msgLoginFailed    = "حدث خطأ أثناء تسجيل الدخول"
	msgFetchFailed    = "حدث خطأ أثناء جلب البيانات"
	msgSearchFailed   = "حدث خطأ أثناء البحث"
	msgUpdateFailed   = "حدث خطأ أثناء التحديث"
	msgDeleteFailed   = "حدث خطأ أثناء الحذف"

	msgNameRequired           = "اسم المستخدم مطلوب"
	msgEmailRequired          = "البريد الإلكتروني مطلوب"
	msgEmailInvalid           = "يجب إدخال بريد إلكتروني صحيح"
	msgPasswordRequired       = "يجب عليك إدخال كلمة مرور صالحة"
	msgPasswordTooShort       = "يجب أن تكون كلمة المرور أكثر من خمسة محارف"
	msgUserTypeInvalid        = "نوع الحساب غير صالح"
	msgSpecializationRequired = "يجب عليك ادخال التخصص"
	msgAddressRequired        = "يجب عليك تحديد العنوان من الخريطة"
	msgPhoneRequired          = "يجب عليك إدخال رقم الهاتف"
	msgWorkingHoursRequired   = "يجب عليك إدخال ساعات العمل"
	msgLocationInvalid        = "الموقع المحدد غير صالح"
)
